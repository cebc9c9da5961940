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

// stationService implements the StationUsecase interface.
type stationService struct {
	stationRepo repository.StationRepository
	logger      *slog.Logger
}

// StationServiceParams holds dependencies for stationService, injected by Fx.
type StationServiceParams struct {
	fx.In

	StationRepo repository.StationRepository
	Logger      *slog.Logger
}

// NewStationService is the constructor for stationService.
func NewStationService(params StationServiceParams) usecase.StationUsecase {
	return &stationService{
		stationRepo: params.StationRepo,
		logger:      params.Logger,
	}
}

func (srv *stationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateStationInput enforces the semantic rules that binding cannot.
func validateStationInput(input *usecase.StationInput) error {
	if input.NameEN == "" || input.NameAR == "" {
		return domainerrors.ErrValidationFailed.WithDetails("both English and Arabic names are required")
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		return domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be provided together")
	}
	if input.Latitude != nil {
		if *input.Latitude < -90 || *input.Latitude > 90 {
			return domainerrors.ErrValidationFailed.WithDetails("latitude out of range")
		}
		if *input.Longitude < -180 || *input.Longitude > 180 {
			return domainerrors.ErrValidationFailed.WithDetails("longitude out of range")
		}
	}

	return nil
}

func applyStationInput(station *entity.Station, input *usecase.StationInput) {
	station.NameEN = input.NameEN
	station.NameAR = input.NameAR
	station.Region = input.Region
	station.City = input.City
	station.Address = input.Address
	station.Phone = input.Phone
	station.Products = input.Products
	station.Services = input.Services
	station.MapLink = input.MapLink
	station.Latitude = input.Latitude
	station.Longitude = input.Longitude
	station.Active = input.Active
	station.DisplayOrder = input.DisplayOrder
}

// ListStations returns stations for the dashboard, inactive included.
func (srv *stationService) ListStations(ctx context.Context) ([]*entity.Station, error) {
	stations, err := srv.stationRepo.List(ctx, repository.StationFilter{IncludeInactive: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stations")
	}

	return stations, nil
}

// GetStation returns one station by ID.
func (srv *stationService) GetStation(ctx context.Context, id uuid.UUID) (*entity.Station, error) {
	station, err := srv.stationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return nil, domainerrors.ErrStationNotFound
		}

		return nil, errors.Wrap(err, "failed to find station")
	}

	return station, nil
}

// CreateStation validates and persists a new station.
func (srv *stationService) CreateStation(ctx context.Context, input *usecase.StationInput) (*entity.Station, error) {
	if err := validateStationInput(input); err != nil {
		return nil, err
	}

	station := &entity.Station{}
	applyStationInput(station, input)

	if err := srv.stationRepo.Create(ctx, station); err != nil {
		srv.log(ctx).Error("Failed to create station", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create station")
	}
	srv.log(ctx).Info("Station created", slog.Any("stationID", station.ID))

	return station, nil
}

// UpdateStation replaces the editable fields of an existing station.
func (srv *stationService) UpdateStation(ctx context.Context, id uuid.UUID, input *usecase.StationInput) (*entity.Station, error) {
	if err := validateStationInput(input); err != nil {
		return nil, err
	}

	station, err := srv.stationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return nil, domainerrors.ErrStationNotFound
		}

		return nil, errors.Wrap(err, "failed to find station for update")
	}

	applyStationInput(station, input)

	if err := srv.stationRepo.Update(ctx, station); err != nil {
		srv.log(ctx).Error("Failed to update station", slog.Any("stationID", id), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update station")
	}
	srv.log(ctx).Info("Station updated", slog.Any("stationID", id))

	return station, nil
}

// DeleteStation removes a station permanently.
func (srv *stationService) DeleteStation(ctx context.Context, id uuid.UUID) error {
	if err := srv.stationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return domainerrors.ErrStationNotFound
		}

		return errors.Wrap(err, "failed to delete station")
	}
	srv.log(ctx).Info("Station deleted", slog.Any("stationID", id))

	return nil
}
