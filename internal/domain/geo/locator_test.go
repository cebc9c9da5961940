package geo

import (
	"testing"

	"stationhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_InitialState(t *testing.T) {
	t.Parallel()

	stations := []*entity.Station{
		station("A", "Riyadh", ptr(24), ptr(46), ""),
	}
	locator := NewLocator(stations)

	assert.Equal(t, RegionAll, locator.Region())
	assert.Nil(t, locator.Selected())
	assert.Equal(t, stations, locator.Visible())
}

func TestLocator_SelectVisibleStation(t *testing.T) {
	t.Parallel()

	target := station("B", "Jeddah", ptr(21.5), ptr(39.2), "")
	locator := NewLocator([]*entity.Station{
		station("A", "Riyadh", ptr(24), ptr(46), ""),
		target,
	})

	require.True(t, locator.Select(target.ID))
	assert.Equal(t, target, locator.Selected())

	center, zoom := locator.MapCenter()
	assert.Equal(t, ZoomFocused, zoom)
	assert.InDelta(t, 21.5, center.Lat(), 1e-9)
}

func TestLocator_SelectUnknownIDLeavesStateUnchanged(t *testing.T) {
	t.Parallel()

	locator := NewLocator([]*entity.Station{
		station("A", "Riyadh", ptr(24), ptr(46), ""),
	})

	assert.False(t, locator.Select(uuid.New()))
	assert.Nil(t, locator.Selected())
}

func TestLocator_SelectOutsideActiveFilterFails(t *testing.T) {
	t.Parallel()

	jeddah := station("B", "Jeddah", ptr(21.5), ptr(39.2), "")
	locator := NewLocator([]*entity.Station{
		station("A", "Riyadh", ptr(24), ptr(46), ""),
		jeddah,
	})

	locator.SetRegion("Riyadh")
	assert.False(t, locator.Select(jeddah.ID))
	assert.Nil(t, locator.Selected())
}

func TestLocator_RegionChangeClearsSelection(t *testing.T) {
	t.Parallel()

	riyadh := station("A", "Riyadh", ptr(24), ptr(46), "")
	locator := NewLocator([]*entity.Station{riyadh})

	require.True(t, locator.Select(riyadh.ID))
	require.NotNil(t, locator.Selected())

	locator.SetRegion("Jeddah")
	assert.Nil(t, locator.Selected())
}

func TestLocator_SelectingAllAlsoClearsSelection(t *testing.T) {
	t.Parallel()

	riyadh := station("A", "Riyadh", ptr(24), ptr(46), "")
	locator := NewLocator([]*entity.Station{riyadh})

	require.True(t, locator.Select(riyadh.ID))

	// Re-selecting the sentinel is still a filter change.
	locator.SetRegion(RegionAll)
	assert.Nil(t, locator.Selected())
}

func TestLocator_VisibleFollowsFilter(t *testing.T) {
	t.Parallel()

	riyadh := station("A", "Riyadh", ptr(24), ptr(46), "")
	jeddah := station("B", "Jeddah", ptr(21.5), ptr(39.2), "")
	locator := NewLocator([]*entity.Station{riyadh, jeddah})

	locator.SetRegion("Jeddah")
	visible := locator.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, jeddah, visible[0])
}

func TestLocator_MapCenterWithoutSelectionAveragesVisible(t *testing.T) {
	t.Parallel()

	locator := NewLocator([]*entity.Station{
		station("A", "Riyadh", ptr(10), ptr(40), ""),
		station("B", "Riyadh", ptr(20), ptr(50), ""),
		station("C", "Jeddah", ptr(90), ptr(90), ""),
	})
	locator.SetRegion("Riyadh")

	center, zoom := locator.MapCenter()
	assert.Equal(t, ZoomOverview, zoom)
	assert.InDelta(t, 15.0, center.Lat(), 1e-9)
	assert.InDelta(t, 45.0, center.Lon(), 1e-9)
}
