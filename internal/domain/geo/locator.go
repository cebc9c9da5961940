package geo

import (
	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Locator tracks the locator view state: the loaded stations, the active
// region filter and at most one selected station. It has two states,
// "no selection" and "station selected". Changing the region filter,
// including back to RegionAll, always clears the selection; that is a
// deliberate product rule, not an accident of implementation.
type Locator struct {
	stations []*entity.Station
	region   string
	selected *entity.Station
}

// NewLocator creates a locator over the given stations with the filter set
// to RegionAll and no selection.
func NewLocator(stations []*entity.Station) *Locator {
	return &Locator{
		stations: stations,
		region:   RegionAll,
	}
}

// Region returns the active region filter.
func (l *Locator) Region() string {
	return l.region
}

// SetRegion switches the active region filter and clears any selection.
func (l *Locator) SetRegion(region string) {
	l.region = region
	l.selected = nil
}

// Select marks the station with the given ID as selected, if it is part of
// the currently visible subset. Selecting an unknown ID leaves the state
// unchanged and reports false.
func (l *Locator) Select(id uuid.UUID) bool {
	for _, station := range l.Visible() {
		if station.ID == id {
			l.selected = station

			return true
		}
	}

	return false
}

// ClearSelection returns the locator to the "no selection" state.
func (l *Locator) ClearSelection() {
	l.selected = nil
}

// Selected returns the selected station, or nil in the "no selection" state.
func (l *Locator) Selected() *entity.Station {
	return l.selected
}

// Visible returns the stations matching the active region filter,
// order-preserving.
func (l *Locator) Visible() []*entity.Station {
	return FilterByRegion(l.stations, l.region)
}

// MapCenter computes the map center and zoom for the current state using
// the three-tier fallback over the visible subset.
func (l *Locator) MapCenter() (orb.Point, int) {
	return ComputeMapCenter(l.Visible(), l.selected)
}
