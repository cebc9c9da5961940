package repository

import (
	"context"
	"errors"

	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrStationNotFound is returned when a station does not exist.
var ErrStationNotFound = errors.New("station not found")

// StationFilter narrows station listings. The zero value lists active
// stations across every region.
type StationFilter struct {
	// Region restricts the listing to one region name. Empty means all
	// regions; region-name matching against the free-text field on each
	// station is the locator core's job, but pushing an exact-match filter
	// into the query avoids shipping the full list when not needed.
	Region string

	// IncludeInactive also returns stations hidden from the public site.
	IncludeInactive bool
}

// StationRepository defines the standard operations for station persistence.
type StationRepository interface {
	// FindByID retrieves a single station by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Station, error)

	// List returns stations matching the filter, ordered by display order
	// ascending, then creation time.
	List(ctx context.Context, filter StationFilter) ([]*entity.Station, error)

	// Create persists a new station.
	Create(ctx context.Context, station *entity.Station) error

	// Update modifies an existing station.
	Update(ctx context.Context, station *entity.Station) error

	// Delete removes a station permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
