package repository

import (
	"context"
	"errors"

	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRegionNotFound is returned when a region does not exist.
var ErrRegionNotFound = errors.New("region not found")

// RegionRepository defines the standard operations for region persistence.
type RegionRepository interface {
	// FindByID retrieves a single region by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Region, error)

	// FindBySlug retrieves a single region by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Region, error)

	// List returns regions ordered by display order ascending.
	List(ctx context.Context, includeInactive bool) ([]*entity.Region, error)

	// Create persists a new region.
	Create(ctx context.Context, region *entity.Region) error

	// Update modifies an existing region.
	Update(ctx context.Context, region *entity.Region) error

	// Delete removes a region permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
