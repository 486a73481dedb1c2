package http

import (
	"errors"
	"log/slog"
	"net/http"

	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindAlreadyExists, errs.KindConflict:
		return http.StatusConflict
	case errs.KindInvalidInput:
		return http.StatusBadRequest
	case errs.KindInvalidAddress:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// httpKinds names the echo statuses that have a domain counterpart.
var httpKinds = map[int]errs.Kind{
	http.StatusBadRequest: errs.KindInvalidInput,
	http.StatusNotFound:   errs.KindNotFound,
}

// fail writes err as a servers.Error.
func (s *Server) fail(c echo.Context, err error) error {
	return writeError(c, s.logger, err)
}

// writeError renders domain errors by kind. Internal failures are logged and
// their message is not exposed to the client.
func writeError(c echo.Context, logger *slog.Logger, err error) error {
	kind := errs.KindOf(err)
	status := statusOf(kind)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "kind", kind.String(), "error", err)
		message = http.StatusText(status)
	}
	return c.JSON(status, servers.Error{Code: status, Kind: kind.String(), Message: message})
}

// bind decodes the request into dst and reports malformed input as invalid input.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return nil
}

// errorHandler renders errors that reach echo, such as unknown routes, path
// parameters the generated wrapper could not bind, validation failures and
// panics caught by the recover middleware, in the same shape as handler errors.
func errorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(statusOfError(err))
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			_ = writeError(c, logger, err)
			return
		}

		message := http.StatusText(he.Code)
		if m, ok := he.Message.(string); ok {
			message = m
		}
		kind := "http"
		if k, ok := httpKinds[he.Code]; ok {
			kind = k.String()
		}
		_ = c.JSON(he.Code, servers.Error{Code: he.Code, Kind: kind, Message: message})
	}
}

func statusOfError(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return statusOf(errs.KindOf(err))
}
