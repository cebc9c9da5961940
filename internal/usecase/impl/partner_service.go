package impl

import (
	"context"
	"log/slog"

	deliverycontext "stationhub/internal/delivery/context"
	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/repository"
	"stationhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// partnerService implements the PartnerUsecase interface.
type partnerService struct {
	partnerRepo repository.PartnerRepository
	logger      *slog.Logger
}

// PartnerServiceParams holds dependencies for partnerService, injected by Fx.
type PartnerServiceParams struct {
	fx.In

	PartnerRepo repository.PartnerRepository
	Logger      *slog.Logger
}

// NewPartnerService is the constructor for partnerService.
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	return &partnerService{
		partnerRepo: params.PartnerRepo,
		logger:      params.Logger,
	}
}

func (srv *partnerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validatePartnerInput(input *usecase.PartnerInput) error {
	if input.NameEN == "" || input.NameAR == "" {
		return domainerrors.ErrValidationFailed.WithDetails("both English and Arabic names are required")
	}

	return nil
}

func applyPartnerInput(partner *entity.Partner, input *usecase.PartnerInput) {
	partner.NameEN = input.NameEN
	partner.NameAR = input.NameAR
	partner.LogoURL = input.LogoURL
	partner.WebsiteURL = input.WebsiteURL
	partner.Active = input.Active
	partner.DisplayOrder = input.DisplayOrder
}

// ListPublicPartners returns active partners for the public site.
func (srv *partnerService) ListPublicPartners(ctx context.Context) ([]*entity.Partner, error) {
	partners, err := srv.partnerRepo.List(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public partners")
	}

	return partners, nil
}

// ListPartners returns all partners for the dashboard.
func (srv *partnerService) ListPartners(ctx context.Context) ([]*entity.Partner, error) {
	partners, err := srv.partnerRepo.List(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	return partners, nil
}

// CreatePartner validates and persists a new partner.
func (srv *partnerService) CreatePartner(ctx context.Context, input *usecase.PartnerInput) (*entity.Partner, error) {
	if err := validatePartnerInput(input); err != nil {
		return nil, err
	}

	partner := &entity.Partner{}
	applyPartnerInput(partner, input)

	if err := srv.partnerRepo.Create(ctx, partner); err != nil {
		srv.log(ctx).Error("Failed to create partner", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create partner")
	}
	srv.log(ctx).Info("Partner created", slog.Any("partnerID", partner.ID))

	return partner, nil
}

// UpdatePartner replaces the editable fields of an existing partner.
func (srv *partnerService) UpdatePartner(ctx context.Context, id uuid.UUID, input *usecase.PartnerInput) (*entity.Partner, error) {
	if err := validatePartnerInput(input); err != nil {
		return nil, err
	}

	partner, err := srv.partnerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner for update")
	}

	applyPartnerInput(partner, input)

	if err := srv.partnerRepo.Update(ctx, partner); err != nil {
		srv.log(ctx).Error("Failed to update partner", slog.Any("partnerID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update partner")
	}
	srv.log(ctx).Info("Partner updated", slog.Any("partnerID", id))

	return partner, nil
}

// DeletePartner removes a partner permanently.
func (srv *partnerService) DeletePartner(ctx context.Context, id uuid.UUID) error {
	if err := srv.partnerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return domainerrors.ErrPartnerNotFound
		}

		return errors.Wrap(err, "failed to delete partner")
	}
	srv.log(ctx).Info("Partner deleted", slog.Any("partnerID", id))

	return nil
}
