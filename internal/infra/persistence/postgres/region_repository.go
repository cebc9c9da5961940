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

// regionRepository implements repository.RegionRepository using GORM.
type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{db: db}
}

// FindByID retrieves a single region by its unique ID.
func (repo *regionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Region, error) {
	var regionM model.RegionModel
	if err := repo.db.WithContext(ctx).First(&regionM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find region by id")
	}

	return toRegionDomain(&regionM), nil
}

// FindBySlug retrieves a single region by its unique slug.
func (repo *regionRepository) FindBySlug(ctx context.Context, slug string) (*entity.Region, error) {
	var regionM model.RegionModel
	if err := repo.db.WithContext(ctx).First(&regionM, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find region by slug")
	}

	return toRegionDomain(&regionM), nil
}

// List returns regions ordered by display order ascending.
func (repo *regionRepository) List(ctx context.Context, includeInactive bool) ([]*entity.Region, error) {
	query := repo.db.WithContext(ctx).Order("display_order ASC, created_at ASC")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var regionModels []model.RegionModel
	if err := query.Find(&regionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list regions")
	}

	regions := make([]*entity.Region, 0, len(regionModels))
	for i := range regionModels {
		regions = append(regions, toRegionDomain(&regionModels[i]))
	}

	return regions, nil
}

// Create persists a new region.
func (repo *regionRepository) Create(ctx context.Context, region *entity.Region) error {
	regionM := fromRegionDomain(region)

	if err := repo.db.WithContext(ctx).Create(regionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRegionSlugTaken.WrapMessage("slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create region")
	}

	region.ID = regionM.ID
	region.CreatedAt = regionM.CreatedAt
	region.UpdatedAt = regionM.UpdatedAt

	return nil
}

// Update modifies an existing region.
func (repo *regionRepository) Update(ctx context.Context, region *entity.Region) error {
	regionM := fromRegionDomain(region)

	if err := repo.db.WithContext(ctx).Save(regionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrRegionSlugTaken.WrapMessage("slug already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update region")
	}

	region.UpdatedAt = regionM.UpdatedAt

	return nil
}

// Delete removes a region permanently.
func (repo *regionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.RegionModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete region")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRegionNotFound
	}

	return nil
}

func toRegionDomain(m *model.RegionModel) *entity.Region {
	return &entity.Region{
		ID:           m.ID,
		NameEN:       m.NameEN,
		NameAR:       m.NameAR,
		Slug:         m.Slug,
		Active:       m.Active,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromRegionDomain(r *entity.Region) *model.RegionModel {
	return &model.RegionModel{
		ID:           r.ID,
		NameEN:       r.NameEN,
		NameAR:       r.NameAR,
		Slug:         r.Slug,
		Active:       r.Active,
		DisplayOrder: r.DisplayOrder,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
