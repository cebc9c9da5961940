package impl

import (
	"context"
	"testing"

	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/geo"
	"stationhub/internal/domain/repository"
	mockRepo "stationhub/internal/mocks/repository"
	mockService "stationhub/internal/mocks/service"
	"stationhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocatorService(stationRepo repository.StationRepository, qrcodeService *mockService.MockQRCodeService) usecase.LocatorUsecase {
	return NewLocatorService(LocatorServiceParams{
		StationRepo:   stationRepo,
		QRCodeService: qrcodeService,
		Logger:        newTestLogger(),
	})
}

func testStation(name, region string, lat, lng float64) *entity.Station {
	return &entity.Station{
		ID:        uuid.New(),
		NameEN:    name,
		NameAR:    name,
		Region:    region,
		Latitude:  &lat,
		Longitude: &lng,
		Active:    true,
	}
}

func TestLocatorService_Locate_AllRegions(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	svc := newLocatorService(stationRepo, qrcodeService)

	ctx := context.Background()
	stations := []*entity.Station{
		testStation("North", "Riyadh", 24.7136, 46.6753),
		testStation("South", "Makkah", 21.4858, 39.1925),
	}

	stationRepo.EXPECT().List(ctx, repository.StationFilter{}).Return(stations, nil)

	out, err := svc.Locate(ctx, &usecase.LocateInput{})

	require.NoError(t, err)
	assert.Len(t, out.Stations, 2)
	assert.Nil(t, out.Selected)
	// Two resolvable stations: centered on their mean at overview zoom.
	assert.InDelta(t, (24.7136+21.4858)/2, out.MapCenter.Latitude, 1e-9)
	assert.InDelta(t, (46.6753+39.1925)/2, out.MapCenter.Longitude, 1e-9)
	assert.Equal(t, geo.ZoomOverview, out.MapCenter.Zoom)
}

func TestLocatorService_Locate_RegionFilter(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	svc := newLocatorService(stationRepo, qrcodeService)

	ctx := context.Background()
	stations := []*entity.Station{
		testStation("North", "Riyadh", 24.7136, 46.6753),
		testStation("South", "Makkah", 21.4858, 39.1925),
	}

	stationRepo.EXPECT().List(ctx, repository.StationFilter{}).Return(stations, nil)

	out, err := svc.Locate(ctx, &usecase.LocateInput{Region: "Riyadh"})

	require.NoError(t, err)
	require.Len(t, out.Stations, 1)
	assert.Equal(t, "Riyadh", out.Stations[0].Region)
}

func TestLocatorService_Locate_Selection(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	svc := newLocatorService(stationRepo, qrcodeService)

	ctx := context.Background()
	target := testStation("Target", "Riyadh", 24.7136, 46.6753)
	stations := []*entity.Station{target, testStation("Other", "Makkah", 21.4858, 39.1925)}

	stationRepo.EXPECT().List(ctx, repository.StationFilter{}).Return(stations, nil)

	out, err := svc.Locate(ctx, &usecase.LocateInput{SelectedID: &target.ID})

	require.NoError(t, err)
	require.NotNil(t, out.Selected)
	assert.Equal(t, target.ID, out.Selected.ID)
	assert.InDelta(t, 24.7136, out.MapCenter.Latitude, 1e-9)
	assert.Equal(t, geo.ZoomFocused, out.MapCenter.Zoom)
	assert.NotEmpty(t, out.Selected.DMS)
}

func TestLocatorService_Locate_SelectionOutsideRegionIgnored(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	svc := newLocatorService(stationRepo, qrcodeService)

	ctx := context.Background()
	outside := testStation("Outside", "Makkah", 21.4858, 39.1925)
	stations := []*entity.Station{testStation("Inside", "Riyadh", 24.7136, 46.6753), outside}

	stationRepo.EXPECT().List(ctx, repository.StationFilter{}).Return(stations, nil)

	out, err := svc.Locate(ctx, &usecase.LocateInput{Region: "Riyadh", SelectedID: &outside.ID})

	require.NoError(t, err)
	assert.Nil(t, out.Selected)
	assert.Equal(t, geo.ZoomOverview, out.MapCenter.Zoom)
}

func TestLocatorService_Locate_NoStationsFallsBackToDefaultCenter(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	svc := newLocatorService(stationRepo, qrcodeService)

	ctx := context.Background()

	stationRepo.EXPECT().List(ctx, repository.StationFilter{}).Return(nil, nil)

	out, err := svc.Locate(ctx, &usecase.LocateInput{})

	require.NoError(t, err)
	assert.Empty(t, out.Stations)
	assert.InDelta(t, geo.DefaultCenter.Lat(), out.MapCenter.Latitude, 1e-9)
	assert.InDelta(t, geo.DefaultCenter.Lon(), out.MapCenter.Longitude, 1e-9)
	assert.Equal(t, geo.ZoomOverview, out.MapCenter.Zoom)
}

func TestLocatorService_Locate_CoordinatesFromMapLink(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	svc := newLocatorService(stationRepo, qrcodeService)

	ctx := context.Background()
	station := &entity.Station{
		ID:      uuid.New(),
		NameEN:  "Linked",
		NameAR:  "Linked",
		Region:  "Madinah",
		MapLink: "https://maps.google.com/?q=24.4672,39.6139",
		Active:  true,
	}

	stationRepo.EXPECT().List(ctx, repository.StationFilter{}).Return([]*entity.Station{station}, nil)

	out, err := svc.Locate(ctx, &usecase.LocateInput{})

	require.NoError(t, err)
	require.Len(t, out.Stations, 1)
	require.NotNil(t, out.Stations[0].Latitude)
	assert.InDelta(t, 24.4672, *out.Stations[0].Latitude, 1e-9)
	assert.InDelta(t, 39.6139, *out.Stations[0].Longitude, 1e-9)
}

func TestLocatorService_StationQR_Success(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	svc := newLocatorService(stationRepo, qrcodeService)

	ctx := context.Background()
	station := &entity.Station{ID: uuid.New(), MapLink: "https://maps.google.com/?q=1,2"}

	stationRepo.EXPECT().FindByID(ctx, station.ID).Return(station, nil)
	qrcodeService.EXPECT().GenerateMapQR(station.MapLink).Return([]byte{0x89, 0x50}, nil)

	png, err := svc.StationQR(ctx, station.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestLocatorService_StationQR_NoMapLink(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	svc := newLocatorService(stationRepo, qrcodeService)

	ctx := context.Background()
	station := &entity.Station{ID: uuid.New()}

	stationRepo.EXPECT().FindByID(ctx, station.ID).Return(station, nil)

	_, err := svc.StationQR(ctx, station.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStationNoMapLink)
}

func TestLocatorService_StationQR_NotFound(t *testing.T) {
	stationRepo := mockRepo.NewMockStationRepository(t)
	qrcodeService := mockService.NewMockQRCodeService(t)
	svc := newLocatorService(stationRepo, qrcodeService)

	ctx := context.Background()
	id := uuid.New()

	stationRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrStationNotFound)

	_, err := svc.StationQR(ctx, id)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStationNotFound)
}
