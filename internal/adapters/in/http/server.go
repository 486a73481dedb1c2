// Package http exposes the dispatch engine as a JSON API built on echo. The
// routes, request models and parameter binding are generated from
// api/openapi.yml into the servers package.
package http

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=../../../../api/oapi-codegen.yml ../../../../api/openapi.yml

import (
	"fmt"
	"log/slog"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/generated/servers"
	"dispatch/internal/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups the use cases served by the API.
type Handlers struct {
	AdvanceClock   *commands.AdvanceClockCommandHandler
	UpdateSettings *commands.UpdateSettingsCommandHandler

	CreateCourier *commands.CreateCourierCommandHandler
	UpdateCourier *commands.UpdateCourierCommandHandler
	DeleteCourier *commands.DeleteCourierCommandHandler

	CreateOrder *commands.CreateOrderCommandHandler
	UpdateOrder *commands.UpdateOrderCommandHandler
	DeleteOrder *commands.DeleteOrderCommandHandler
	CancelOrder *commands.CancelOrderCommandHandler

	PickUpOrder  *commands.PickUpOrderCommandHandler
	DeliverOrder *commands.DeliverOrderCommandHandler

	ResetDatabase      *commands.ResetDatabaseCommandHandler
	InitializeDatabase *commands.InitializeDatabaseCommandHandler

	GetClock             *queries.GetClockQueryHandler
	GetSettings          *queries.GetSettingsQueryHandler
	GetAllCouriers       *queries.GetAllCouriersQueryHandler
	GetCourierDeliveries *queries.GetCourierDeliveriesQueryHandler
	GetAvailableOrders   *queries.GetAvailableOrdersQueryHandler
	GetOrders            *queries.GetOrdersQueryHandler
	GetOrderStatus       *queries.GetOrderStatusQueryHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements the generated ServerInterface by translating HTTP
// requests into commands and queries.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "http_server"),
	}
}

// NewEcho builds the echo instance with health, metrics, API documentation
// and the API routes. Requests to API routes are validated against the
// embedded OpenAPI document before they reach a handler. httpMetrics may be nil.
func NewEcho(s *Server, httpMetrics *metrics.HTTP, gatherer prometheus.Gatherer) (*echo.Echo, error) {
	swagger, err := servers.GetSwagger()
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	validate, err := requestValidator(swagger)
	if err != nil {
		return nil, err
	}
	if err = registerSwaggerDoc(swagger); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(s.logger)

	e.Use(middleware.Recover())
	e.Use(observability(httpMetrics, s.logger))
	e.Use(validate)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	e.GET("/swagger/*", swaggerHandler())

	servers.RegisterHandlers(e, s)
	return e, nil
}
