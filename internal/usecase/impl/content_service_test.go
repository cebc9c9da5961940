package impl

import (
	"context"
	"encoding/json"
	"testing"

	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/repository"
	mockRepo "stationhub/internal/mocks/repository"
	"stationhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newContentService(contentRepo repository.ContentRepository) usecase.ContentUsecase {
	return NewContentService(ContentServiceParams{
		ContentRepo: contentRepo,
		Logger:      newTestLogger(),
	})
}

func TestContentService_SaveContent_Success(t *testing.T) {
	contentRepo := mockRepo.NewMockContentRepository(t)
	svc := newContentService(contentRepo)

	ctx := context.Background()
	editorID := uuid.New()

	contentRepo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.ContentBlock")).
		Run(func(ctx context.Context, block *entity.ContentBlock) {
			assert.Equal(t, entity.SectionAbout, block.Section)
			assert.Equal(t, editorID, block.UpdatedBy)
		}).
		Return(nil)

	block, err := svc.SaveContent(ctx, &usecase.ContentInput{
		Section: entity.SectionAbout,
		Locale:  entity.LocaleArabic,
		Body:    json.RawMessage(`{"title":"من نحن"}`),
	}, editorID)

	require.NoError(t, err)
	assert.Equal(t, entity.LocaleArabic, block.Locale)
}

func TestContentService_SaveContent_UnsupportedLocale(t *testing.T) {
	contentRepo := mockRepo.NewMockContentRepository(t)
	svc := newContentService(contentRepo)

	_, err := svc.SaveContent(context.Background(), &usecase.ContentInput{
		Section: entity.SectionAbout,
		Locale:  "fr",
		Body:    json.RawMessage(`{}`),
	}, uuid.New())

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestContentService_SaveContent_InvalidJSON(t *testing.T) {
	contentRepo := mockRepo.NewMockContentRepository(t)
	svc := newContentService(contentRepo)

	_, err := svc.SaveContent(context.Background(), &usecase.ContentInput{
		Section: entity.SectionAbout,
		Locale:  entity.LocaleEnglish,
		Body:    json.RawMessage(`{"title":`),
	}, uuid.New())

	require.Error(t, err)
}

func TestContentService_GetContent_NotFound(t *testing.T) {
	contentRepo := mockRepo.NewMockContentRepository(t)
	svc := newContentService(contentRepo)

	ctx := context.Background()

	contentRepo.EXPECT().
		FindBySectionLocale(ctx, entity.SectionHero, entity.LocaleEnglish).
		Return(nil, repository.ErrContentNotFound)

	_, err := svc.GetContent(ctx, entity.SectionHero, entity.LocaleEnglish)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrContentNotFound)
}

func TestContentService_GetContent_Success(t *testing.T) {
	contentRepo := mockRepo.NewMockContentRepository(t)
	svc := newContentService(contentRepo)

	ctx := context.Background()
	stored := &entity.ContentBlock{Section: entity.SectionHero, Locale: entity.LocaleEnglish}

	contentRepo.EXPECT().
		FindBySectionLocale(ctx, entity.SectionHero, entity.LocaleEnglish).
		Return(stored, nil)

	block, err := svc.GetContent(ctx, entity.SectionHero, entity.LocaleEnglish)

	require.NoError(t, err)
	assert.Equal(t, stored, block)
}
