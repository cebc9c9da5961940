package impl

import (
	"context"
	"encoding/json"
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

// contentService implements the ContentUsecase interface.
type contentService struct {
	contentRepo repository.ContentRepository
	logger      *slog.Logger
}

// ContentServiceParams holds dependencies for contentService, injected by Fx.
type ContentServiceParams struct {
	fx.In

	ContentRepo repository.ContentRepository
	Logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(params ContentServiceParams) usecase.ContentUsecase {
	return &contentService{
		contentRepo: params.ContentRepo,
		logger:      params.Logger,
	}
}

func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetContent returns one section in one locale.
func (srv *contentService) GetContent(ctx context.Context, section, locale string) (*entity.ContentBlock, error) {
	if !entity.IsValidLocale(locale) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported locale")
	}

	block, err := srv.contentRepo.FindBySectionLocale(ctx, section, locale)
	if err != nil {
		if errors.Is(err, repository.ErrContentNotFound) {
			return nil, domainerrors.ErrContentNotFound
		}

		return nil, errors.Wrap(err, "failed to find content block")
	}

	return block, nil
}

// ListContent returns every stored content block for the dashboard.
func (srv *contentService) ListContent(ctx context.Context) ([]*entity.ContentBlock, error) {
	blocks, err := srv.contentRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list content blocks")
	}

	return blocks, nil
}

// SaveContent validates and upserts a content block.
func (srv *contentService) SaveContent(ctx context.Context, input *usecase.ContentInput, editorID uuid.UUID) (*entity.ContentBlock, error) {
	if input.Section == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("section is required")
	}
	if !entity.IsValidLocale(input.Locale) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unsupported locale")
	}
	if !json.Valid(input.Body) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("body must be a JSON document")
	}

	block := &entity.ContentBlock{
		Section:   input.Section,
		Locale:    input.Locale,
		Body:      input.Body,
		UpdatedBy: editorID,
	}

	if err := srv.contentRepo.Upsert(ctx, block); err != nil {
		srv.log(ctx).Error("Failed to save content block",
			slog.String("section", input.Section), slog.String("locale", input.Locale), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save content block")
	}
	srv.log(ctx).Info("Content block saved",
		slog.String("section", input.Section), slog.String("locale", input.Locale), slog.Any("editorID", editorID))

	return block, nil
}
