package handler

import (
	"net/http"

	"berries/internal/application/dto"
	"berries/internal/application/service"

	"github.com/labstack/echo/v4"
)

// PushRecipientHandler serves the push recipient registration.
type PushRecipientHandler struct {
	recipientService service.PushRecipientService
}

// NewPushRecipientHandler creates a new PushRecipientHandler.
func NewPushRecipientHandler(recipientService service.PushRecipientService) *PushRecipientHandler {
	return &PushRecipientHandler{recipientService: recipientService}
}

// Register handles PUT /v1/push-recipients.
func (h *PushRecipientHandler) Register(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.RegisterPushRecipientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.recipientService.RegisterRecipient(c.Request().Context(), p.OwnerID, req); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
