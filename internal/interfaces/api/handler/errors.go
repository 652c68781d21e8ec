package handler

import (
	"errors"
	"fmt"
	"net/http"

	appErrors "berries/internal/pkg/errors"
	"berries/internal/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Reason string `json:"reason"`
	Type   string `json:"type"`
}

// statusOf maps application errors onto HTTP status codes and a short type name.
func statusOf(err error) (int, string) {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs), errors.Is(err, appErrors.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument"
	case errors.Is(err, appErrors.ErrPageOutOfRange):
		return http.StatusNotFound, "page_out_of_range"
	case errors.Is(err, appErrors.ErrBerryNotFound), errors.Is(err, appErrors.ErrTodoNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, appErrors.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

// NewErrorHandler returns an echo.HTTPErrorHandler that renders application errors
// as ErrorResponse. Internal failures are logged and their details hidden.
func NewErrorHandler(log logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			code int
			body ErrorResponse
		)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			body = ErrorResponse{Reason: fmt.Sprint(he.Message), Type: http.StatusText(he.Code)}
		} else {
			var kind string
			code, kind = statusOf(err)
			body = ErrorResponse{Reason: err.Error(), Type: kind}
		}

		if code >= http.StatusInternalServerError {
			log.Error(fmt.Sprintf("Request %s %s failed", c.Request().Method, c.Request().URL.Path), err)
			body.Reason = http.StatusText(code)
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(code)
		} else {
			sendErr = c.JSON(code, body)
		}
		if sendErr != nil {
			log.Error("Error sending error response", sendErr)
		}
	}
}
