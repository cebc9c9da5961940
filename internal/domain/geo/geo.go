// Package geo implements the station locator core: region filtering,
// best-effort coordinate resolution and map-center computation.
// Everything here is pure; callers own all state and side effects.
package geo

import (
	"fmt"
	"math"
	"net/url"
	"regexp"

	"stationhub/internal/domain/entity"

	"github.com/paulmach/orb"
)

// RegionAll is the sentinel region filter meaning "no filtering".
const RegionAll = "all"

// Map zoom levels used by the three-tier center fallback.
const (
	// ZoomFocused is used when centering on a single selected station.
	ZoomFocused = 15
	// ZoomOverview is used when centering on the average of all stations,
	// or on the country-wide default center.
	ZoomOverview = 6
)

// DefaultCenter is the fixed fallback center when no station resolves:
// the geographic centroid of Saudi Arabia.
var DefaultCenter = orb.Point{45.0792, 23.8859}

// latLngPair matches "<lat>,<lng>" in decimal degrees, optionally signed.
var latLngPair = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*$`)

// FilterByRegion returns the subset of stations whose region equals the
// given name, order-preserving. The RegionAll sentinel returns the input
// slice unchanged. An unmatched name yields an empty slice; that is a
// normal "no results" outcome, not an error.
func FilterByRegion(stations []*entity.Station, region string) []*entity.Station {
	if region == RegionAll {
		return stations
	}

	filtered := make([]*entity.Station, 0, len(stations))
	for _, station := range stations {
		if station.Region == region {
			filtered = append(filtered, station)
		}
	}

	return filtered
}

// ResolveCoordinates derives a plottable position for a station.
// Explicit latitude/longitude always win and the map link is ignored.
// Otherwise the map link is parsed for a q=<lat>,<lng> query parameter.
// ok is false when neither path yields coordinates; such stations are
// omitted from map rendering but still listed textually.
func ResolveCoordinates(station *entity.Station) (point orb.Point, ok bool) {
	if station.HasCoordinates() {
		return orb.Point{*station.Longitude, *station.Latitude}, true
	}

	return ParseMapLink(station.MapLink)
}

// ParseMapLink extracts a coordinate pair from an externally authored map
// URL by matching a q=<lat>,<lng> query parameter. It is best-effort string
// parsing; any malformed input reports ok=false rather than an error.
func ParseMapLink(link string) (point orb.Point, ok bool) {
	if link == "" {
		return orb.Point{}, false
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return orb.Point{}, false
	}

	query := parsed.Query().Get("q")
	if query == "" {
		// Some map links carry the query in the fragment, e.g. "#map?q=...".
		if fragment, err := url.ParseQuery(parsed.Fragment); err == nil {
			query = fragment.Get("q")
		}
	}

	match := latLngPair.FindStringSubmatch(query)
	if match == nil {
		return orb.Point{}, false
	}

	var lat, lng float64
	if _, err := fmt.Sscanf(match[1], "%f", &lat); err != nil {
		return orb.Point{}, false
	}
	if _, err := fmt.Sscanf(match[2], "%f", &lng); err != nil {
		return orb.Point{}, false
	}

	return orb.Point{lng, lat}, true
}

// ComputeMapCenter picks the map center and zoom with a strict three-tier
// precedence: a selected, resolvable station wins at ZoomFocused; else the
// arithmetic mean of all resolvable stations at ZoomOverview; else the
// country-wide DefaultCenter. Unresolvable stations never contribute to
// the mean.
func ComputeMapCenter(stations []*entity.Station, selected *entity.Station) (center orb.Point, zoom int) {
	if selected != nil {
		if point, ok := ResolveCoordinates(selected); ok {
			return point, ZoomFocused
		}
	}

	var sumLng, sumLat float64
	var resolved int
	for _, station := range stations {
		point, ok := ResolveCoordinates(station)
		if !ok {
			continue
		}
		sumLng += point.Lon()
		sumLat += point.Lat()
		resolved++
	}

	if resolved == 0 {
		return DefaultCenter, ZoomOverview
	}

	return orb.Point{sumLng / float64(resolved), sumLat / float64(resolved)}, ZoomOverview
}

// FormatDMS converts decimal-degree coordinates to a degrees/minutes/seconds
// string with hemisphere suffixes, used to build a fallback place-search
// link when no authored map link exists. Seconds are rounded to one decimal
// place. Hemisphere is chosen by sign: non-negative latitude is N, negative
// is S; non-negative longitude is E, negative is W.
func FormatDMS(lat, lng float64) string {
	return formatAxis(lat, "N", "S") + " " + formatAxis(lng, "E", "W")
}

func formatAxis(value float64, positive, negative string) string {
	suffix := positive
	if value < 0 {
		suffix = negative
	}

	abs := math.Abs(value)
	degrees := math.Floor(abs)
	minutesFull := (abs - degrees) * 60
	minutes := math.Floor(minutesFull)
	seconds := (minutesFull - minutes) * 60

	return fmt.Sprintf("%d°%d'%.1f\"%s", int(degrees), int(minutes), seconds, suffix)
}
