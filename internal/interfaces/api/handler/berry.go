package handler

import (
	"fmt"
	"net/http"

	"berries/internal/application/dto"
	"berries/internal/application/service"
	appErrors "berries/internal/pkg/errors"
	"berries/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// BerryHandler serves the berry endpoints.
type BerryHandler struct {
	berryService service.BerryService
	log          logger.Logger
}

// NewBerryHandler creates a new BerryHandler.
func NewBerryHandler(berryService service.BerryService, log logger.Logger) *BerryHandler {
	return &BerryHandler{berryService: berryService, log: log}
}

// Create handles POST /v1/berries.
func (h *BerryHandler) Create(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.CreateBerryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id, err := h.berryService.CreateBerry(c.Request().Context(), p, req)
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("%s/%s", c.Request().URL.Path, id))
	return c.NoContent(http.StatusCreated)
}

// List handles GET /v1/berries.
func (h *BerryHandler) List(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	berries, err := h.berryService.ListBerries(c.Request().Context(), p)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, berries)
}

// Get handles GET /v1/berries/:id.
func (h *BerryHandler) Get(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	berry, err := h.berryService.GetBerry(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, berry)
}

// Update handles PUT /v1/berries/:id.
func (h *BerryHandler) Update(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	var req dto.UpdateBerryRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	id := c.Param("id")
	modified, err := h.berryService.UpdateBerry(c.Request().Context(), p, id, req)
	if err != nil {
		return err
	}
	if modified == 0 {
		return fmt.Errorf("%w: berry %s", appErrors.ErrBerryNotFound, id)
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/berries/:id.
func (h *BerryHandler) Delete(c echo.Context) error {
	p, err := principalFrom(c)
	if err != nil {
		return err
	}
	if err := h.berryService.DeleteBerry(c.Request().Context(), p, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
