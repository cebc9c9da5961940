package impl

import (
	"context"
	"log/slog"
	"regexp"

	deliverycontext "stationhub/internal/delivery/context"
	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/repository"
	"stationhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// slugPattern is the shape of a region slug: lowercase, digits and hyphens,
// starting and ending with a letter or digit.
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// regionService implements the RegionUsecase interface.
type regionService struct {
	regionRepo repository.RegionRepository
	logger     *slog.Logger
}

// RegionServiceParams holds dependencies for regionService, injected by Fx.
type RegionServiceParams struct {
	fx.In

	RegionRepo repository.RegionRepository
	Logger     *slog.Logger
}

// NewRegionService is the constructor for regionService.
func NewRegionService(params RegionServiceParams) usecase.RegionUsecase {
	return &regionService{
		regionRepo: params.RegionRepo,
		logger:     params.Logger,
	}
}

func (srv *regionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func validateRegionInput(input *usecase.RegionInput) error {
	if input.NameEN == "" || input.NameAR == "" {
		return domainerrors.ErrValidationFailed.WithDetails("both English and Arabic names are required")
	}
	if !slugPattern.MatchString(input.Slug) {
		return domainerrors.ErrValidationFailed.WithDetails("slug must be lowercase letters, digits and hyphens")
	}

	return nil
}

func applyRegionInput(region *entity.Region, input *usecase.RegionInput) {
	region.NameEN = input.NameEN
	region.NameAR = input.NameAR
	region.Slug = input.Slug
	region.Active = input.Active
	region.DisplayOrder = input.DisplayOrder
}

// ListPublicRegions returns active regions for the locator dropdown.
func (srv *regionService) ListPublicRegions(ctx context.Context) ([]*entity.Region, error) {
	regions, err := srv.regionRepo.List(ctx, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list public regions")
	}

	return regions, nil
}

// ListRegions returns all regions for the dashboard.
func (srv *regionService) ListRegions(ctx context.Context) ([]*entity.Region, error) {
	regions, err := srv.regionRepo.List(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	return regions, nil
}

// CreateRegion validates and persists a new region.
func (srv *regionService) CreateRegion(ctx context.Context, input *usecase.RegionInput) (*entity.Region, error) {
	if err := validateRegionInput(input); err != nil {
		return nil, err
	}

	region := &entity.Region{}
	applyRegionInput(region, input)

	if err := srv.regionRepo.Create(ctx, region); err != nil {
		srv.log(ctx).Error("Failed to create region", slog.String("slug", input.Slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create region")
	}
	srv.log(ctx).Info("Region created", slog.Any("regionID", region.ID), slog.String("slug", region.Slug))

	return region, nil
}

// UpdateRegion replaces the editable fields of an existing region.
func (srv *regionService) UpdateRegion(ctx context.Context, id uuid.UUID, input *usecase.RegionInput) (*entity.Region, error) {
	if err := validateRegionInput(input); err != nil {
		return nil, err
	}

	region, err := srv.regionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			return nil, domainerrors.ErrRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find region for update")
	}

	applyRegionInput(region, input)

	if err := srv.regionRepo.Update(ctx, region); err != nil {
		srv.log(ctx).Error("Failed to update region", slog.Any("regionID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update region")
	}
	srv.log(ctx).Info("Region updated", slog.Any("regionID", id))

	return region, nil
}

// DeleteRegion removes a region permanently. Stations referencing the region
// keep their free-text region name and fall back to the all-regions view.
func (srv *regionService) DeleteRegion(ctx context.Context, id uuid.UUID) error {
	if err := srv.regionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRegionNotFound) {
			return domainerrors.ErrRegionNotFound
		}

		return errors.Wrap(err, "failed to delete region")
	}
	srv.log(ctx).Info("Region deleted", slog.Any("regionID", id))

	return nil
}
