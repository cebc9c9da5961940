package repository

import (
	"context"
	"errors"

	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPartnerNotFound is returned when a partner does not exist.
var ErrPartnerNotFound = errors.New("partner not found")

// PartnerRepository defines the standard operations for partner persistence.
type PartnerRepository interface {
	// FindByID retrieves a single partner by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error)

	// List returns partners ordered by display order ascending.
	List(ctx context.Context, includeInactive bool) ([]*entity.Partner, error)

	// Create persists a new partner.
	Create(ctx context.Context, partner *entity.Partner) error

	// Update modifies an existing partner.
	Update(ctx context.Context, partner *entity.Partner) error

	// Delete removes a partner permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
