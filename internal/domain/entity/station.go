package entity

import (
	"time"

	"github.com/google/uuid"
)

// Station is a fuel station shown on the public locator map.
//
// Latitude/Longitude may be absent; in that case MapLink may still encode a
// usable position in its query string (q=<lat>,<lng>). A station with
// neither cannot be plotted but still appears in textual listings.
type Station struct {
	ID           uuid.UUID
	NameEN       string   // Display name, English.
	NameAR       string   // Display name, Arabic.
	Region       string   // Free-text region name; matched against Region.NameEN for filtering.
	City         string
	Address      string
	Latitude     *float64 // Decimal degrees, nil when not captured.
	Longitude    *float64
	Phone        string
	Products     []string // Product tags, e.g. "91", "95", "diesel".
	Services     []string // Service tags, e.g. "car wash", "mini market".
	MapLink      string   // Externally authored map URL, optional.
	Active       bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasCoordinates reports whether the station carries explicit coordinates.
func (s *Station) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// Region is an admin-managed grouping of stations. The slug is unique and
// used only for dashboard organization; locator filtering matches on the
// display name stored on each station.
type Region struct {
	ID           uuid.UUID
	NameEN       string
	NameAR       string
	Slug         string // URL-safe identifier, unique.
	Active       bool
	DisplayOrder int // Ascending; lower values are shown first.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
