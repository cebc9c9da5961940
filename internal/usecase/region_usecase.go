package usecase

import (
	"context"

	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
)

// RegionInput defines the editable fields of a region.
type RegionInput struct {
	NameEN       string `json:"name_en" validate:"required"`
	NameAR       string `json:"name_ar" validate:"required"`
	Slug         string `json:"slug" validate:"required"`
	Active       bool   `json:"active"`
	DisplayOrder int    `json:"display_order"`
}

// RegionUsecase defines region operations for both the public site and
// the dashboard.
type RegionUsecase interface {
	// ListPublicRegions returns active regions for the locator dropdown.
	ListPublicRegions(ctx context.Context) ([]*entity.Region, error)

	// ListRegions returns all regions for the dashboard.
	ListRegions(ctx context.Context) ([]*entity.Region, error)

	// CreateRegion validates and persists a new region.
	CreateRegion(ctx context.Context, input *RegionInput) (*entity.Region, error)

	// UpdateRegion replaces the editable fields of an existing region.
	UpdateRegion(ctx context.Context, id uuid.UUID, input *RegionInput) (*entity.Region, error)

	// DeleteRegion removes a region permanently.
	DeleteRegion(ctx context.Context, id uuid.UUID) error
}
