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

// LocatorHandler serves the public station locator.
type LocatorHandler struct {
	uc     usecase.LocatorUsecase
	logger *slog.Logger
}

// NewLocatorHandler is the constructor for LocatorHandler, injected by Fx.
func NewLocatorHandler(uc usecase.LocatorUsecase, logger *slog.Logger) *LocatorHandler {
	return &LocatorHandler{
		uc:     uc,
		logger: logger,
	}
}

// Locate returns the visible stations, selection and map center for the
// requested region. An absent region query means all regions.
func (h *LocatorHandler) Locate(c echo.Context) error {
	input := &usecase.LocateInput{
		Region: c.QueryParam("region"),
	}

	if selected := c.QueryParam("selected"); selected != "" {
		selectedID, err := uuid.Parse(selected)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid station ID in selected parameter")
		}
		input.SelectedID = &selectedID
	}

	output, err := h.uc.Locate(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Stations located successfully")
}

// StationQR streams a PNG QR code pointing at the station's map link.
func (h *LocatorHandler) StationQR(c echo.Context) error {
	stationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid station ID")
	}

	png, err := h.uc.StationQR(c.Request().Context(), stationID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
