package postgres

import (
	"context"

	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/repository"
	"stationhub/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// contentRepository implements repository.ContentRepository using GORM.
type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository is the constructor for contentRepository.
func NewContentRepository(db *gorm.DB) repository.ContentRepository {
	return &contentRepository{db: db}
}

// FindBySectionLocale retrieves one section in one locale.
func (repo *contentRepository) FindBySectionLocale(ctx context.Context, section, locale string) (*entity.ContentBlock, error) {
	var blockM model.ContentBlockModel
	if err := repo.db.WithContext(ctx).
		First(&blockM, "section = ? AND locale = ?", section, locale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find content block")
	}

	return toContentDomain(&blockM), nil
}

// List returns every stored content block.
func (repo *contentRepository) List(ctx context.Context) ([]*entity.ContentBlock, error) {
	var blockModels []model.ContentBlockModel
	if err := repo.db.WithContext(ctx).
		Order("section ASC, locale ASC").
		Find(&blockModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list content blocks")
	}

	blocks := make([]*entity.ContentBlock, 0, len(blockModels))
	for i := range blockModels {
		blocks = append(blocks, toContentDomain(&blockModels[i]))
	}

	return blocks, nil
}

// Upsert creates the block if absent, otherwise replaces its body.
// The (section, locale) pair is the conflict target.
func (repo *contentRepository) Upsert(ctx context.Context, block *entity.ContentBlock) error {
	blockM := fromContentDomain(block)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "section"}, {Name: "locale"}},
			DoUpdates: clause.AssignmentColumns([]string{"body", "updated_by", "updated_at"}),
		}).
		Create(blockM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert content block")
	}

	block.ID = blockM.ID
	block.CreatedAt = blockM.CreatedAt
	block.UpdatedAt = blockM.UpdatedAt

	return nil
}

func toContentDomain(m *model.ContentBlockModel) *entity.ContentBlock {
	return &entity.ContentBlock{
		ID:        m.ID,
		Section:   m.Section,
		Locale:    m.Locale,
		Body:      m.Body,
		UpdatedBy: m.UpdatedBy,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromContentDomain(b *entity.ContentBlock) *model.ContentBlockModel {
	return &model.ContentBlockModel{
		ID:        b.ID,
		Section:   b.Section,
		Locale:    b.Locale,
		Body:      b.Body,
		UpdatedBy: b.UpdatedBy,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
