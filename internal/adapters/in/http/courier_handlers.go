package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(c echo.Context) error {
	couriers, err := s.handlers.GetAllCouriers.Handle(c.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapSlice(couriers, toCourier))
}

// CreateCourier handles POST /api/v1/couriers.
func (s *Server) CreateCourier(c echo.Context) error {
	details, err := bindCourierDetails(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateCourierCommand(details)
	if err != nil {
		return s.fail(c, err)
	}

	id, err := s.handlers.CreateCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, servers.CreatedCourier{Id: id})
}

// UpdateCourier handles PUT /api/v1/couriers/{id}.
func (s *Server) UpdateCourier(c echo.Context, id servers.CourierId) error {
	details, err := bindCourierDetails(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateCourierCommand(id, details)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.UpdateCourier.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteCourier handles DELETE /api/v1/couriers/{id}.
func (s *Server) DeleteCourier(c echo.Context, id servers.CourierId) error {
	cmd, err := commands.NewDeleteCourierCommand(id)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.DeleteCourier.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// GetCourierDeliveries handles GET /api/v1/couriers/{id}/deliveries.
func (s *Server) GetCourierDeliveries(c echo.Context, id servers.CourierId) error {
	query, err := queries.NewGetCourierDeliveriesQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	deliveries, err := s.handlers.GetCourierDeliveries.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapSlice(deliveries, toDelivery))
}

// GetAvailableOrders handles GET /api/v1/couriers/{id}/available-orders.
func (s *Server) GetAvailableOrders(c echo.Context, id servers.CourierId) error {
	query, err := queries.NewGetAvailableOrdersQuery(id)
	if err != nil {
		return s.fail(c, err)
	}
	orders, err := s.handlers.GetAvailableOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, mapSlice(orders, toAvailableOrder))
}

// PickUpOrder handles POST /api/v1/couriers/{id}/pickup.
func (s *Server) PickUpOrder(c echo.Context, courierID servers.CourierId) error {
	var req servers.PickUpOrderJSONRequestBody
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}
	orderID, err := toOrderID("order_id", req.OrderId)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewPickUpOrderCommand(courierID, orderID)
	if err != nil {
		return s.fail(c, err)
	}
	deliveryID, err := s.handlers.PickUpOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, servers.PickUpResult{DeliveryId: deliveryID.Google()})
}

// DeliverOrder handles POST /api/v1/couriers/{id}/deliver.
func (s *Server) DeliverOrder(c echo.Context, courierID servers.CourierId) error {
	var req servers.DeliverOrderJSONRequestBody
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}
	endType, err := delivery.ParseEndType(req.EndType)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeliverOrderCommand(courierID, endType)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.DeliverOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// bindCourierDetails decodes a courier body. Active defaults to true.
func bindCourierDetails(c echo.Context) (commands.CourierDetails, error) {
	var req servers.CourierRequest
	if err := bind(c, &req); err != nil {
		return commands.CourierDetails{}, err
	}
	deliveryType, err := courier.ParseDeliveryType(req.DeliveryType)
	if err != nil {
		return commands.CourierDetails{}, err
	}

	details := commands.CourierDetails{
		Name:                  req.Name,
		Phone:                 req.Phone,
		Email:                 valueOr(req.Email, ""),
		DeliveryType:          deliveryType,
		Active:                valueOr(req.Active, true),
		PersonalMaxDistanceKm: req.PersonalMaxDistanceKm,
	}
	if req.EmploymentStart != nil {
		details.EmploymentStart = req.EmploymentStart.UTC()
	}
	return details, nil
}
