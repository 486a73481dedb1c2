package http

import (
	"net/http"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetClock handles GET /api/v1/clock.
func (s *Server) GetClock(c echo.Context) error {
	now, err := s.handlers.GetClock.Handle(c.Request().Context(), queries.NewGetClockQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.Clock{Now: now})
}

// AdvanceClock handles POST /api/v1/clock/advance. The reconciliation sweep
// runs before the response is written.
func (s *Server) AdvanceClock(c echo.Context) error {
	var req servers.AdvanceClockJSONRequestBody
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	delta, err := time.ParseDuration(req.Delta)
	if err != nil {
		return s.fail(c, errs.NewValueIsInvalidErrorWithCause("delta", err))
	}

	cmd, err := commands.NewAdvanceClockCommand(delta)
	if err != nil {
		return s.fail(c, err)
	}

	now, err := s.handlers.AdvanceClock.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, servers.Clock{Now: now})
}

// GetSettings handles GET /api/v1/settings.
func (s *Server) GetSettings(c echo.Context) error {
	cfg, err := s.handlers.GetSettings.Handle(c.Request().Context(), queries.NewGetSettingsQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toSettings(cfg))
}

// UpdateSettings handles PUT /api/v1/settings as a partial update of the
// current snapshot.
func (s *Server) UpdateSettings(c echo.Context) error {
	var req servers.UpdateSettingsJSONRequestBody
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	ctx := c.Request().Context()
	current, err := s.handlers.GetSettings.Handle(ctx, queries.NewGetSettingsQuery())
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateSettingsCommand(applySettingsUpdate(current, req))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.UpdateSettings.Handle(ctx, cmd); err != nil {
		return s.fail(c, err)
	}

	updated, err := s.handlers.GetSettings.Handle(ctx, queries.NewGetSettingsQuery())
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, toSettings(updated))
}

// ResetDatabase handles POST /api/v1/admin/reset.
func (s *Server) ResetDatabase(c echo.Context) error {
	if err := s.handlers.ResetDatabase.Handle(c.Request().Context(), commands.NewResetDatabaseCommand()); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// InitializeDatabase handles POST /api/v1/admin/initialize.
func (s *Server) InitializeDatabase(c echo.Context) error {
	var req servers.InitializeDatabaseJSONRequestBody
	if err := bind(c, &req); err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewInitializeDatabaseCommand(valueOr(req.Couriers, 0), valueOr(req.Orders, 0))
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.InitializeDatabase.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func valueOr[T any](v *T, fallback T) T {
	if v == nil {
		return fallback
	}
	return *v
}
