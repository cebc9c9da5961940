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

// PartnerHandler holds dependencies for partner handlers.
type PartnerHandler struct {
	uc     usecase.PartnerUsecase
	logger *slog.Logger
}

// NewPartnerHandler is the constructor for PartnerHandler, injected by Fx.
func NewPartnerHandler(uc usecase.PartnerUsecase, logger *slog.Logger) *PartnerHandler {
	return &PartnerHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListPublic returns active partners for the public site.
func (h *PartnerHandler) ListPublic(c echo.Context) error {
	partners, err := h.uc.ListPublicPartners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partners, "Partners retrieved successfully")
}

// List returns every partner for the dashboard.
func (h *PartnerHandler) List(c echo.Context) error {
	partners, err := h.uc.ListPartners(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partners, "Partners retrieved successfully")
}

// Create handles the partner creation request.
func (h *PartnerHandler) Create(c echo.Context) error {
	var input *usecase.PartnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	partner, err := h.uc.CreatePartner(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, partner, "Partner created successfully")
}

// Update replaces the editable fields of a partner.
func (h *PartnerHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid partner ID")
	}

	var input *usecase.PartnerInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid partner input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	partner, err := h.uc.UpdatePartner(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, partner, "Partner updated successfully")
}

// Delete removes a partner.
func (h *PartnerHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid partner ID")
	}

	if err := h.uc.DeletePartner(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Partner deleted"}, "Partner deleted successfully")
}
