package usecase

import (
	"context"

	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
)

// PartnerInput defines the editable fields of a partner.
type PartnerInput struct {
	NameEN       string `json:"name_en" validate:"required"`
	NameAR       string `json:"name_ar" validate:"required"`
	LogoURL      string `json:"logo_url"`
	WebsiteURL   string `json:"website_url" validate:"omitempty,url"`
	Active       bool   `json:"active"`
	DisplayOrder int    `json:"display_order"`
}

// PartnerUsecase defines partner operations for both the public site and
// the dashboard.
type PartnerUsecase interface {
	// ListPublicPartners returns active partners for the public site.
	ListPublicPartners(ctx context.Context) ([]*entity.Partner, error)

	// ListPartners returns all partners for the dashboard.
	ListPartners(ctx context.Context) ([]*entity.Partner, error)

	// CreatePartner validates and persists a new partner.
	CreatePartner(ctx context.Context, input *PartnerInput) (*entity.Partner, error)

	// UpdatePartner replaces the editable fields of an existing partner.
	UpdatePartner(ctx context.Context, id uuid.UUID, input *PartnerInput) (*entity.Partner, error)

	// DeletePartner removes a partner permanently.
	DeletePartner(ctx context.Context, id uuid.UUID) error
}
