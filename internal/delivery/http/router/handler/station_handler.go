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

// StationHandler holds dependencies for station management handlers.
type StationHandler struct {
	uc     usecase.StationUsecase
	logger *slog.Logger
}

// NewStationHandler is the constructor for StationHandler, injected by Fx.
func NewStationHandler(uc usecase.StationUsecase, logger *slog.Logger) *StationHandler {
	return &StationHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns every station, inactive ones included.
func (h *StationHandler) List(c echo.Context) error {
	stations, err := h.uc.ListStations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stations, "Stations retrieved successfully")
}

// Get returns one station by ID.
func (h *StationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid station ID")
	}

	station, err := h.uc.GetStation(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, station, "Station retrieved successfully")
}

// Create handles the station creation request.
func (h *StationHandler) Create(c echo.Context) error {
	var input *usecase.StationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid station input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	station, err := h.uc.CreateStation(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, station, "Station created successfully")
}

// Update replaces the editable fields of a station.
func (h *StationHandler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid station ID")
	}

	var input *usecase.StationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid station input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	station, err := h.uc.UpdateStation(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, station, "Station updated successfully")
}

// Delete removes a station.
func (h *StationHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid station ID")
	}

	if err := h.uc.DeleteStation(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Station deleted"}, "Station deleted successfully")
}
