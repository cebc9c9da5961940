package geo

import (
	"testing"

	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func station(name, region string, lat, lng *float64, mapLink string) *entity.Station {
	return &entity.Station{
		ID:        uuid.New(),
		NameEN:    name,
		Region:    region,
		Latitude:  lat,
		Longitude: lng,
		MapLink:   mapLink,
		Active:    true,
	}
}

func TestFilterByRegion(t *testing.T) {
	t.Parallel()

	riyadh1 := station("Exit 5", "Riyadh", ptr(24.7136), ptr(46.6753), "")
	riyadh2 := station("Exit 9", "Riyadh", ptr(24.8), ptr(46.7), "")
	jeddah := station("Corniche", "Jeddah", ptr(21.5433), ptr(39.1728), "")
	all := []*entity.Station{riyadh1, jeddah, riyadh2}

	t.Run("all sentinel returns input unchanged", func(t *testing.T) {
		t.Parallel()

		got := FilterByRegion(all, RegionAll)
		assert.Equal(t, all, got)
	})

	t.Run("matching region preserves order", func(t *testing.T) {
		t.Parallel()

		got := FilterByRegion(all, "Riyadh")
		require.Len(t, got, 2)
		assert.Equal(t, riyadh1, got[0])
		assert.Equal(t, riyadh2, got[1])
	})

	t.Run("unmatched region yields empty slice not error", func(t *testing.T) {
		t.Parallel()

		got := FilterByRegion(all, "Tabuk")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestResolveCoordinates_ExplicitWinsOverMapLink(t *testing.T) {
	t.Parallel()

	s := station("Explicit", "Riyadh", ptr(24.7136), ptr(46.6753),
		"https://maps.google.com/?q=99.0,99.0")

	point, ok := ResolveCoordinates(s)
	require.True(t, ok)
	assert.InDelta(t, 24.7136, point.Lat(), 1e-9)
	assert.InDelta(t, 46.6753, point.Lon(), 1e-9)
}

func TestResolveCoordinates_FallsBackToMapLink(t *testing.T) {
	t.Parallel()

	s := station("Linked", "Madinah", nil, nil,
		"https://maps.google.com/maps?q=24.4672,39.6135&hl=ar")

	point, ok := ResolveCoordinates(s)
	require.True(t, ok)
	assert.InDelta(t, 24.4672, point.Lat(), 1e-9)
	assert.InDelta(t, 39.6135, point.Lon(), 1e-9)
}

func TestResolveCoordinates_Unresolvable(t *testing.T) {
	t.Parallel()

	s := station("Bare", "Madinah", nil, nil, "")
	_, ok := ResolveCoordinates(s)
	assert.False(t, ok)
}

func TestParseMapLink(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		link    string
		wantLat float64
		wantLng float64
		wantOK  bool
	}{
		{
			name:    "plain q parameter",
			link:    "https://maps.google.com/?q=24.4672,39.6135",
			wantLat: 24.4672,
			wantLng: 39.6135,
			wantOK:  true,
		},
		{
			name:    "signed coordinates",
			link:    "https://maps.google.com/?q=-33.8688,151.2093",
			wantLat: -33.8688,
			wantLng: 151.2093,
			wantOK:  true,
		},
		{
			name:    "extra parameters around q",
			link:    "https://maps.google.com/maps?hl=ar&q=26.3927,50.1095&z=15",
			wantLat: 26.3927,
			wantLng: 50.1095,
			wantOK:  true,
		},
		{
			name:    "q in fragment",
			link:    "https://maps.example.com/#q=21.4858,39.1925",
			wantLat: 21.4858,
			wantLng: 39.1925,
			wantOK:  true,
		},
		{
			name:    "integer degrees",
			link:    "https://maps.google.com/?q=24,46",
			wantLat: 24,
			wantLng: 46,
			wantOK:  true,
		},
		{name: "empty link", link: "", wantOK: false},
		{name: "no q parameter", link: "https://maps.google.com/place/abc", wantOK: false},
		{name: "q is a place name", link: "https://maps.google.com/?q=Riyadh+Exit+5", wantOK: false},
		{name: "missing longitude", link: "https://maps.google.com/?q=24.4672", wantOK: false},
		{name: "garbage pair", link: "https://maps.google.com/?q=abc,def", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			point, ok := ParseMapLink(tt.link)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.wantLat, point.Lat(), 1e-9)
				assert.InDelta(t, tt.wantLng, point.Lon(), 1e-9)
			}
		})
	}
}

func TestComputeMapCenter_SelectedStationWins(t *testing.T) {
	t.Parallel()

	selected := station("Selected", "Madinah", ptr(24.4672), ptr(39.6135), "")
	others := []*entity.Station{
		station("A", "Riyadh", ptr(10), ptr(10), ""),
		station("B", "Riyadh", ptr(20), ptr(20), ""),
		selected,
	}

	center, zoom := ComputeMapCenter(others, selected)
	assert.Equal(t, ZoomFocused, zoom)
	assert.InDelta(t, 24.4672, center.Lat(), 1e-9)
	assert.InDelta(t, 39.6135, center.Lon(), 1e-9)
}

func TestComputeMapCenter_MeanOfResolvable(t *testing.T) {
	t.Parallel()

	stations := []*entity.Station{
		station("A", "Riyadh", ptr(10), ptr(40), ""),
		station("B", "Riyadh", ptr(30), ptr(50), ""),
		// Unresolvable: must be excluded from the average.
		station("C", "Riyadh", nil, nil, ""),
		// Resolvable through its map link.
		station("D", "Riyadh", nil, nil, "https://maps.google.com/?q=20,60"),
	}

	center, zoom := ComputeMapCenter(stations, nil)
	assert.Equal(t, ZoomOverview, zoom)
	assert.InDelta(t, 20.0, center.Lat(), 1e-9)
	assert.InDelta(t, 50.0, center.Lon(), 1e-9)
}

func TestComputeMapCenter_DefaultWhenNothingResolves(t *testing.T) {
	t.Parallel()

	stations := []*entity.Station{
		station("A", "Riyadh", nil, nil, ""),
		station("B", "Riyadh", nil, nil, "https://maps.google.com/?q=not-coords"),
	}

	center, zoom := ComputeMapCenter(stations, nil)
	assert.Equal(t, ZoomOverview, zoom)
	assert.Equal(t, DefaultCenter, center)
}

func TestComputeMapCenter_UnresolvableSelectionFallsThrough(t *testing.T) {
	t.Parallel()

	selected := station("NoCoords", "Riyadh", nil, nil, "")
	stations := []*entity.Station{
		selected,
		station("A", "Riyadh", ptr(24), ptr(46), ""),
	}

	center, zoom := ComputeMapCenter(stations, selected)
	assert.Equal(t, ZoomOverview, zoom)
	assert.InDelta(t, 24.0, center.Lat(), 1e-9)
	assert.InDelta(t, 46.0, center.Lon(), 1e-9)
}

func TestComputeMapCenter_EmptyList(t *testing.T) {
	t.Parallel()

	center, zoom := ComputeMapCenter(nil, nil)
	assert.Equal(t, ZoomOverview, zoom)
	assert.Equal(t, DefaultCenter, center)
}

func TestFormatDMS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		lat  float64
		lng  float64
		want string
	}{
		{
			name: "madinah north east",
			lat:  24.4672,
			lng:  39.6135,
			want: `24°28'1.9"N 39°36'48.6"E`,
		},
		{
			name: "south west hemisphere",
			lat:  -33.8688,
			lng:  -70.6693,
			want: `33°52'7.7"S 70°40'9.5"W`,
		},
		{
			name: "zero is north east",
			lat:  0,
			lng:  0,
			want: `0°0'0.0"N 0°0'0.0"E`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, FormatDMS(tt.lat, tt.lng))
		})
	}
}

func TestDefaultCenterIsKSACentroid(t *testing.T) {
	t.Parallel()

	assert.Equal(t, orb.Point{45.0792, 23.8859}, DefaultCenter)
}
