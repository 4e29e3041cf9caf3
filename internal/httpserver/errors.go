package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"shopapi/internal/service"
)

// httpError maps the service error taxonomy onto HTTP statuses.
func httpError(l *slog.Logger, op string, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrInvalidReference):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		l.Error(op+"_failed", "status", status, "error", err)
		return echo.NewHTTPError(status, "internal error")
	}
	l.Warn(op+"_failed", "status", status, "error", err)
	return echo.NewHTTPError(status, err.Error())
}
