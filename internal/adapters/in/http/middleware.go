package http

import (
	"log/slog"
	"strconv"
	"time"

	"dispatch/internal/metrics"

	"github.com/labstack/echo/v4"
)

// observability records request metrics labelled by route pattern and logs
// every finished request.
func observability(m *metrics.HTTP, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let echo render the error now so the status below is final.
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			elapsed := time.Since(start)

			path := c.Path()
			if path == "" {
				path = "unknown"
			}
			if m != nil {
				m.Observe(req.Method, path, strconv.Itoa(status), elapsed)
			}

			logger.InfoContext(req.Context(), "http request",
				"method", req.Method,
				"path", req.URL.Path,
				"route", path,
				"status", status,
				"duration", elapsed,
			)
			return nil
		}
	}
}
