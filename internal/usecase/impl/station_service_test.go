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

func newStationService(stationRepo repository.StationRepository) usecase.StationUsecase {
	return NewStationService(StationServiceParams{
		StationRepo: stationRepo,
		Logger:      newTestLogger(),
	})
}

func validStationInput() *usecase.StationInput {
	return &usecase.StationInput{
		NameEN: "North Gate",
		NameAR: "البوابة الشمالية",
		Region: "riyadh",
		City:   "Riyadh",
		Active: true,
	}
}

func TestStationService_CreateStation_Success(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	svc := newStationService(stationRepo)

	ctx := context.Background()

	stationRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Station")).
		Run(func(ctx context.Context, station *entity.Station) {
			assert.Equal(t, "North Gate", station.NameEN)
			assert.True(t, station.Active)
		}).
		Return(nil)

	station, err := svc.CreateStation(ctx, validStationInput())

	require.NoError(t, err)
	assert.Equal(t, "riyadh", station.Region)
}

func TestStationService_CreateStation_MissingArabicName(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	svc := newStationService(stationRepo)

	input := validStationInput()
	input.NameAR = ""

	_, err := svc.CreateStation(context.Background(), input)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestStationService_CreateStation_LoneCoordinate(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	svc := newStationService(stationRepo)

	lat := 24.4672
	input := validStationInput()
	input.Latitude = &lat

	_, err := svc.CreateStation(context.Background(), input)

	require.Error(t, err)
}

func TestStationService_CreateStation_CoordinateOutOfRange(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	svc := newStationService(stationRepo)

	lat := 95.0
	lng := 39.6139
	input := validStationInput()
	input.Latitude = &lat
	input.Longitude = &lng

	_, err := svc.CreateStation(context.Background(), input)

	require.Error(t, err)
}

func TestStationService_UpdateStation_NotFound(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	svc := newStationService(stationRepo)

	ctx := context.Background()
	id := uuid.New()

	stationRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrStationNotFound)

	_, err := svc.UpdateStation(ctx, id, validStationInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStationNotFound)
}

func TestStationService_UpdateStation_Success(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	svc := newStationService(stationRepo)

	ctx := context.Background()
	existing := &entity.Station{ID: uuid.New(), NameEN: "Old Name", Region: "makkah"}

	stationRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	stationRepo.EXPECT().Update(ctx, existing).Return(nil)

	station, err := svc.UpdateStation(ctx, existing.ID, validStationInput())

	require.NoError(t, err)
	assert.Equal(t, "North Gate", station.NameEN)
	assert.Equal(t, "riyadh", station.Region)
}

func TestStationService_ListStations_IncludesInactive(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	svc := newStationService(stationRepo)

	ctx := context.Background()

	stationRepo.EXPECT().
		List(ctx, repository.StationFilter{IncludeInactive: true}).
		Return([]*entity.Station{{NameEN: "A"}, {NameEN: "B", Active: false}}, nil)

	stations, err := svc.ListStations(ctx)

	require.NoError(t, err)
	assert.Len(t, stations, 2)
}

func TestStationService_DeleteStation_NotFound(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	svc := newStationService(stationRepo)

	ctx := context.Background()
	id := uuid.New()

	stationRepo.EXPECT().Delete(ctx, id).Return(repository.ErrStationNotFound)

	err := svc.DeleteStation(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStationNotFound)
}
