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

// partnerRepository implements repository.PartnerRepository using GORM.
type partnerRepository struct {
	db *gorm.DB
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(db *gorm.DB) repository.PartnerRepository {
	return &partnerRepository{db: db}
}

// FindByID retrieves a single partner by its unique ID.
func (repo *partnerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Partner, error) {
	var partnerM model.PartnerModel
	if err := repo.db.WithContext(ctx).First(&partnerM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPartnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find partner by id")
	}

	return toPartnerDomain(&partnerM), nil
}

// List returns partners ordered by display order ascending.
func (repo *partnerRepository) List(ctx context.Context, includeInactive bool) ([]*entity.Partner, error) {
	query := repo.db.WithContext(ctx).Order("display_order ASC, created_at ASC")
	if !includeInactive {
		query = query.Where("active = ?", true)
	}

	var partnerModels []model.PartnerModel
	if err := query.Find(&partnerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list partners")
	}

	partners := make([]*entity.Partner, 0, len(partnerModels))
	for i := range partnerModels {
		partners = append(partners, toPartnerDomain(&partnerModels[i]))
	}

	return partners, nil
}

// Create persists a new partner.
func (repo *partnerRepository) Create(ctx context.Context, partner *entity.Partner) error {
	partnerM := fromPartnerDomain(partner)

	if err := repo.db.WithContext(ctx).Create(partnerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create partner")
	}

	partner.ID = partnerM.ID
	partner.CreatedAt = partnerM.CreatedAt
	partner.UpdatedAt = partnerM.UpdatedAt

	return nil
}

// Update modifies an existing partner.
func (repo *partnerRepository) Update(ctx context.Context, partner *entity.Partner) error {
	partnerM := fromPartnerDomain(partner)

	if err := repo.db.WithContext(ctx).Save(partnerM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update partner")
	}

	partner.UpdatedAt = partnerM.UpdatedAt

	return nil
}

// Delete removes a partner permanently.
func (repo *partnerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.PartnerModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete partner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPartnerNotFound
	}

	return nil
}

func toPartnerDomain(m *model.PartnerModel) *entity.Partner {
	return &entity.Partner{
		ID:           m.ID,
		Name:         m.Name,
		LogoURL:      m.LogoURL,
		WebsiteURL:   m.WebsiteURL,
		Active:       m.Active,
		DisplayOrder: m.DisplayOrder,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromPartnerDomain(p *entity.Partner) *model.PartnerModel {
	return &model.PartnerModel{
		ID:           p.ID,
		Name:         p.Name,
		LogoURL:      p.LogoURL,
		WebsiteURL:   p.WebsiteURL,
		Active:       p.Active,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
