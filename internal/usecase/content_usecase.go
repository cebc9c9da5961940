package usecase

import (
	"context"
	"encoding/json"

	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ContentInput defines one content block write.
type ContentInput struct {
	Section string          `json:"section" validate:"required"`
	Locale  string          `json:"locale" validate:"required"`
	Body    json.RawMessage `json:"body" validate:"required"`
}

// ContentUsecase manages the editable sections of the public site.
type ContentUsecase interface {
	// GetContent returns one section in one locale.
	GetContent(ctx context.Context, section, locale string) (*entity.ContentBlock, error)

	// ListContent returns every stored content block for the dashboard.
	ListContent(ctx context.Context) ([]*entity.ContentBlock, error)

	// SaveContent validates and upserts a content block, recording who
	// wrote it.
	SaveContent(ctx context.Context, input *ContentInput, editorID uuid.UUID) (*entity.ContentBlock, error)
}
