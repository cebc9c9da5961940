package impl

import (
	"context"
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

func newRegionService(regionRepo repository.RegionRepository) usecase.RegionUsecase {
	return NewRegionService(RegionServiceParams{
		RegionRepo: regionRepo,
		Logger:     newTestLogger(),
	})
}

func TestRegionService_CreateRegion_Success(t *testing.T) {
	regionRepo := mockRepo.NewMockRegionRepository(t)
	svc := newRegionService(regionRepo)

	ctx := context.Background()

	regionRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Region")).
		Run(func(ctx context.Context, region *entity.Region) {
			assert.Equal(t, "eastern-province", region.Slug)
		}).
		Return(nil)

	region, err := svc.CreateRegion(ctx, &usecase.RegionInput{
		NameEN: "Eastern Province",
		NameAR: "المنطقة الشرقية",
		Slug:   "eastern-province",
		Active: true,
	})

	require.NoError(t, err)
	assert.True(t, region.Active)
}

func TestRegionService_CreateRegion_BadSlug(t *testing.T) {
	regionRepo := mockRepo.NewMockRegionRepository(t)
	svc := newRegionService(regionRepo)

	for _, slug := range []string{"", "Riyadh", "riyadh-", "-riyadh", "riyadh region", "riyadh--north"} {
		_, err := svc.CreateRegion(context.Background(), &usecase.RegionInput{
			NameEN: "Riyadh",
			NameAR: "الرياض",
			Slug:   slug,
		})

		require.Error(t, err, "slug %q should be rejected", slug)

		var appErr domainerrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
	}
}

func TestRegionService_ListPublicRegions_ActiveOnly(t *testing.T) {
	regionRepo := mockRepo.NewMockRegionRepository(t)
	svc := newRegionService(regionRepo)

	ctx := context.Background()

	regionRepo.EXPECT().
		List(ctx, false).
		Return([]*entity.Region{{Slug: "riyadh", Active: true}}, nil)

	regions, err := svc.ListPublicRegions(ctx)

	require.NoError(t, err)
	require.Len(t, regions, 1)
	assert.Equal(t, "riyadh", regions[0].Slug)
}

func TestRegionService_UpdateRegion_NotFound(t *testing.T) {
	regionRepo := mockRepo.NewMockRegionRepository(t)
	svc := newRegionService(regionRepo)

	ctx := context.Background()
	id := uuid.New()

	regionRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRegionNotFound)

	_, err := svc.UpdateRegion(ctx, id, &usecase.RegionInput{
		NameEN: "Riyadh",
		NameAR: "الرياض",
		Slug:   "riyadh",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRegionNotFound)
}

func TestRegionService_DeleteRegion_Success(t *testing.T) {
	regionRepo := mockRepo.NewMockRegionRepository(t)
	svc := newRegionService(regionRepo)

	ctx := context.Background()
	id := uuid.New()

	regionRepo.EXPECT().Delete(ctx, id).Return(nil)

	require.NoError(t, svc.DeleteRegion(ctx, id))
}
