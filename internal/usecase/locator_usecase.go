package usecase

import (
	"context"

	"github.com/google/uuid"
)

// LocateInput is one locator query: a region filter plus an optional
// selected station.
type LocateInput struct {
	// Region is a region name, or the all-regions sentinel when empty.
	Region string

	// SelectedID picks one station for focus. It only takes effect when
	// the station is visible under the region filter.
	SelectedID *uuid.UUID
}

// StationView is one station prepared for map display.
type StationView struct {
	ID        uuid.UUID `json:"id"`
	NameEN    string    `json:"name_en"`
	NameAR    string    `json:"name_ar"`
	Region    string    `json:"region"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Products  []string  `json:"products"`
	Services  []string  `json:"services"`
	MapLink   string    `json:"map_link"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	// DMS is the degrees/minutes/seconds rendering of the coordinates,
	// empty when the station has none.
	DMS string `json:"dms"`
}

// MapCenterView is the computed map position for one locator query.
type MapCenterView struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      int     `json:"zoom"`
}

// LocateOutput is the full locator answer: the visible stations, the
// selection after visibility rules, and where to center the map.
type LocateOutput struct {
	Stations  []*StationView `json:"stations"`
	Selected  *StationView   `json:"selected"`
	MapCenter MapCenterView  `json:"map_center"`
}

// LocatorUsecase answers public station-locator queries.
type LocatorUsecase interface {
	// Locate filters active stations by region, applies the selection and
	// computes the map center.
	Locate(ctx context.Context, input *LocateInput) (*LocateOutput, error)

	// StationQR renders a station's map link as a PNG QR code.
	StationQR(ctx context.Context, stationID uuid.UUID) ([]byte, error)
}
