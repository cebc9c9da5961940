package handler

import (
	"log/slog"
	"net/http"

	"stationhub/internal/delivery/http/response"
	"stationhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegionHandler holds dependencies for region handlers.
type RegionHandler struct {
	uc     usecase.RegionUsecase
	logger *slog.Logger
}

// NewRegionHandler is the constructor for RegionHandler, injected by Fx.
func NewRegionHandler(uc usecase.RegionUsecase, logger *slog.Logger) *RegionHandler {
	return &RegionHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPublic returns active regions for the locator dropdown.
func (h *RegionHandler) ListPublic(c echo.Context) error {
	regions, err := h.uc.ListPublicRegions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, regions, "Regions retrieved successfully")
}

// List returns every region for the dashboard.
func (h *RegionHandler) List(c echo.Context) error {
	regions, err := h.uc.ListRegions(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, regions, "Regions retrieved successfully")
}

// Create handles the region creation request.
func (h *RegionHandler) Create(c echo.Context) error {
	var input *usecase.RegionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid region input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	region, err := h.uc.CreateRegion(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, region, "Region created successfully")
}

// Update replaces the editable fields of a region.
func (h *RegionHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid region ID")
	}

	var input *usecase.RegionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid region input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	region, err := h.uc.UpdateRegion(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, region, "Region updated successfully")
}

// Delete removes a region.
func (h *RegionHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid region ID")
	}

	if err := h.uc.DeleteRegion(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Region deleted"}, "Region deleted successfully")
}
