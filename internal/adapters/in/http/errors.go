package http

import (
	"errors"
	"net/http"

	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrStateIsInvalid),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, ports.ErrPaymentDeclined):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError hides the details of unexpected failures from the client and logs them instead.
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := mapErrorToStatus(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = http.StatusText(status)
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
