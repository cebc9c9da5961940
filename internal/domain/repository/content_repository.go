package repository

import (
	"context"
	"errors"

	"stationhub/internal/domain/entity"
)

// ErrContentNotFound is returned when a content block does not exist.
var ErrContentNotFound = errors.New("content block not found")

// ContentRepository persists the editable sections of the public site.
type ContentRepository interface {
	// FindBySectionLocale retrieves one section in one locale.
	FindBySectionLocale(ctx context.Context, section, locale string) (*entity.ContentBlock, error)

	// List returns every stored content block.
	List(ctx context.Context) ([]*entity.ContentBlock, error)

	// Upsert creates the block if absent, otherwise replaces its body.
	Upsert(ctx context.Context, block *entity.ContentBlock) error
}
