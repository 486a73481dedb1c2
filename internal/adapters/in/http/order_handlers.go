package http

import (
	"errors"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(c echo.Context) error {
	orders, err := s.handlers.GetOrders.Handle(c.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapSlice(orders, toOrder))
}

// CreateOrder handles POST /api/v1/orders. The address is geocoded before the
// order is stored.
func (s *Server) CreateOrder(c echo.Context) error {
	details, err := bindOrderDetails(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(details)
	if err != nil {
		return s.fail(c, err)
	}
	id, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, servers.CreatedOrder{Id: id.Google()})
}

// UpdateOrder handles PUT /api/v1/orders/{id}.
func (s *Server) UpdateOrder(c echo.Context, orderID servers.OrderId) error {
	id, err := toOrderID("order id", orderID)
	if err != nil {
		return s.fail(c, err)
	}
	details, err := bindOrderDetails(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, details)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.UpdateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{id}.
func (s *Server) DeleteOrder(c echo.Context, orderID servers.OrderId) error {
	id, err := toOrderID("order id", orderID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(c echo.Context, orderID servers.OrderId) error {
	id, err := toOrderID("order id", orderID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCancelOrderCommand(id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.CancelOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetOrderStatus handles GET /api/v1/orders/{id}/status.
func (s *Server) GetOrderStatus(c echo.Context, orderID servers.OrderId) error {
	id, err := toOrderID("order id", orderID)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderStatusQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	status, err := s.handlers.GetOrderStatus.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toOrderStatus(status))
}

func bindOrderDetails(c echo.Context) (commands.OrderDetails, error) {
	var req servers.OrderRequest
	if err := bind(c, &req); err != nil {
		return commands.OrderDetails{}, err
	}

	orderType, typeErr := order.ParseType(req.Type)
	parcel, parcelErr := order.NewParcel(
		req.Parcel.WeightKg,
		req.Parcel.VolumeLiters,
		order.Dimensions{
			LengthCm: req.Parcel.LengthCm,
			WidthCm:  req.Parcel.WidthCm,
			HeightCm: req.Parcel.HeightCm,
		},
		valueOr(req.Parcel.Fragile, false),
	)
	customer, customerErr := order.NewCustomer(req.Customer.Name, req.Customer.Phone)
	if err := errors.Join(typeErr, parcelErr, customerErr); err != nil {
		return commands.OrderDetails{}, err
	}

	return commands.OrderDetails{
		Type:     orderType,
		Address:  req.Address,
		Parcel:   parcel,
		Customer: customer,
	}, nil
}
