package impl

import (
	"context"
	"log/slog"

	deliverycontext "stationhub/internal/delivery/context"
	"stationhub/internal/domain/entity"
	domainerrors "stationhub/internal/domain/errors"
	"stationhub/internal/domain/geo"
	"stationhub/internal/domain/repository"
	"stationhub/internal/domain/service"
	"stationhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locatorService implements the LocatorUsecase interface.
type locatorService struct {
	stationRepo   repository.StationRepository
	qrcodeService service.QRCodeService
	logger        *slog.Logger
}

// LocatorServiceParams holds dependencies for locatorService, injected by Fx.
type LocatorServiceParams struct {
	fx.In

	StationRepo   repository.StationRepository
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewLocatorService is the constructor for locatorService.
func NewLocatorService(params LocatorServiceParams) usecase.LocatorUsecase {
	return &locatorService{
		stationRepo:   params.StationRepo,
		qrcodeService: params.QRCodeService,
		logger:        params.Logger,
	}
}

func (srv *locatorService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Locate answers one locator query over the active stations.
func (srv *locatorService) Locate(ctx context.Context, input *usecase.LocateInput) (*usecase.LocateOutput, error) {
	stations, err := srv.stationRepo.List(ctx, repository.StationFilter{})
	if err != nil {
		srv.log(ctx).Error("Failed to list stations for locator", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list stations")
	}

	locator := geo.NewLocator(stations)

	region := input.Region
	if region == "" {
		region = geo.RegionAll
	}
	locator.SetRegion(region)

	if input.SelectedID != nil {
		// Selection silently misses when the station is not visible under
		// the region filter.
		locator.Select(*input.SelectedID)
	}

	center, zoom := locator.MapCenter()

	visible := locator.Visible()
	views := make([]*usecase.StationView, 0, len(visible))
	for _, station := range visible {
		views = append(views, buildStationView(station))
	}

	var selectedView *usecase.StationView
	if selected := locator.Selected(); selected != nil {
		selectedView = buildStationView(selected)
	}

	return &usecase.LocateOutput{
		Stations: views,
		Selected: selectedView,
		MapCenter: usecase.MapCenterView{
			Latitude:  center.Lat(),
			Longitude: center.Lon(),
			Zoom:      zoom,
		},
	}, nil
}

// StationQR renders a station's map link as a PNG QR code.
func (srv *locatorService) StationQR(ctx context.Context, stationID uuid.UUID) ([]byte, error) {
	station, err := srv.stationRepo.FindByID(ctx, stationID)
	if err != nil {
		if errors.Is(err, repository.ErrStationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStationNotFound, "station not found for QR code")
		}

		return nil, errors.Wrap(err, "failed to load station for QR code")
	}
	if station.MapLink == "" {
		return nil, errors.Wrap(domainerrors.ErrStationNoMapLink, "station has no map link")
	}

	png, err := srv.qrcodeService.GenerateMapQR(station.MapLink)
	if err != nil {
		srv.log(ctx).Error("Failed to generate station QR code", slog.Any("stationID", stationID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return png, nil
}

// buildStationView prepares one station for map display, resolving
// coordinates from the explicit fields or the map link.
func buildStationView(station *entity.Station) *usecase.StationView {
	view := &usecase.StationView{
		ID:       station.ID,
		NameEN:   station.NameEN,
		NameAR:   station.NameAR,
		Region:   station.Region,
		City:     station.City,
		Address:  station.Address,
		Phone:    station.Phone,
		Products: station.Products,
		Services: station.Services,
		MapLink:  station.MapLink,
	}

	if point, ok := geo.ResolveCoordinates(station); ok {
		lat, lng := point.Lat(), point.Lon()
		view.Latitude = &lat
		view.Longitude = &lng
		view.DMS = geo.FormatDMS(lat, lng)
	}

	return view
}
