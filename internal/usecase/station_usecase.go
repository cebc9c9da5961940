package usecase

import (
	"context"

	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
)

// StationInput defines the editable fields of a station.
type StationInput struct {
	NameEN       string   `json:"name_en" validate:"required"`
	NameAR       string   `json:"name_ar" validate:"required"`
	Region       string   `json:"region"`
	City         string   `json:"city"`
	Address      string   `json:"address"`
	Phone        string   `json:"phone"`
	Products     []string `json:"products"`
	Services     []string `json:"services"`
	MapLink      string   `json:"map_link"`
	Latitude     *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude    *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	Active       bool     `json:"active"`
	DisplayOrder int      `json:"display_order"`
}

// StationUsecase defines the dashboard-side station operations.
type StationUsecase interface {
	// ListStations returns stations for the dashboard, inactive included.
	ListStations(ctx context.Context) ([]*entity.Station, error)

	// GetStation returns one station by ID.
	GetStation(ctx context.Context, id uuid.UUID) (*entity.Station, error)

	// CreateStation validates and persists a new station.
	CreateStation(ctx context.Context, input *StationInput) (*entity.Station, error)

	// UpdateStation replaces the editable fields of an existing station.
	UpdateStation(ctx context.Context, id uuid.UUID, input *StationInput) (*entity.Station, error)

	// DeleteStation removes a station permanently.
	DeleteStation(ctx context.Context, id uuid.UUID) error
}
