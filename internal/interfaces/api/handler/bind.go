package handler

import (
	"fmt"

	appErrors "berries/internal/pkg/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into req and runs the echo validator.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return fmt.Errorf("%w: malformed request body", appErrors.ErrInvalidArgument)
	}
	if err := c.Validate(req); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrInvalidArgument, err)
	}
	return nil
}
