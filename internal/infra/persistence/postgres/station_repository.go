package postgres

import (
	"context"

	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/repository"
	"stationhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// stationRepository implements repository.StationRepository using GORM.
type stationRepository struct {
	db *gorm.DB
}

// NewStationRepository is the constructor for stationRepository.
func NewStationRepository(db *gorm.DB) repository.StationRepository {
	return &stationRepository{db: db}
}

// FindByID retrieves a single station by its unique ID.
func (repo *stationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Station, error) {
	var stationM model.StationModel
	if err := repo.db.WithContext(ctx).First(&stationM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStationNotFound
		}

		return nil, errors.Wrap(err, "failed to find station by id")
	}

	return toStationDomain(&stationM), nil
}

// List returns stations matching the filter, display order first.
func (repo *stationRepository) List(ctx context.Context, filter repository.StationFilter) ([]*entity.Station, error) {
	query := repo.db.WithContext(ctx).
		Order("display_order ASC, created_at ASC")

	if !filter.IncludeInactive {
		query = query.Where("active = ?", true)
	}
	if filter.Region != "" {
		query = query.Where("region = ?", filter.Region)
	}

	var stationModels []model.StationModel
	if err := query.Find(&stationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stations")
	}

	stations := make([]*entity.Station, 0, len(stationModels))
	for i := range stationModels {
		stations = append(stations, toStationDomain(&stationModels[i]))
	}

	return stations, nil
}

// Create persists a new station.
func (repo *stationRepository) Create(ctx context.Context, station *entity.Station) error {
	stationM := fromStationDomain(station)

	if err := repo.db.WithContext(ctx).Create(stationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required station information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create station")
	}

	station.ID = stationM.ID
	station.CreatedAt = stationM.CreatedAt
	station.UpdatedAt = stationM.UpdatedAt

	return nil
}

// Update modifies an existing station.
func (repo *stationRepository) Update(ctx context.Context, station *entity.Station) error {
	stationM := fromStationDomain(station)

	if err := repo.db.WithContext(ctx).Save(stationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update station")
	}

	station.UpdatedAt = stationM.UpdatedAt

	return nil
}

// Delete removes a station permanently.
func (repo *stationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.StationModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete station")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStationNotFound
	}

	return nil
}

func toStationDomain(m *model.StationModel) *entity.Station {
	return &entity.Station{
		ID:           m.ID,
		NameEN:       m.NameEN,
		NameAR:       m.NameAR,
		Region:       m.Region,
		City:         m.City,
		Address:      m.Address,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		Phone:        m.Phone,
		Products:     m.Products,
		Services:     m.Services,
		MapLink:      m.MapLink,
		Active:       m.Active,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromStationDomain(s *entity.Station) *model.StationModel {
	return &model.StationModel{
		ID:           s.ID,
		NameEN:       s.NameEN,
		NameAR:       s.NameAR,
		Region:       s.Region,
		City:         s.City,
		Address:      s.Address,
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
		Phone:        s.Phone,
		Products:     s.Products,
		Services:     s.Services,
		MapLink:      s.MapLink,
		Active:       s.Active,
		DisplayOrder: s.DisplayOrder,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
