package cloudev

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortParksByDistance(t *testing.T) {
	parks := []Park{
		{ID: "far", GeoLat: 48.0, GeoLng: 107.5},
		{ID: "near", GeoLat: 47.919, GeoLng: 106.918},
		{ID: "mid", GeoLat: 47.95, GeoLng: 107.0},
	}

	sorted := SortParksByDistance(parks, 47.918, 106.917)
	require.Len(t, sorted, 3)
	assert.Equal(t, "near", sorted[0].ID)
	assert.Equal(t, "mid", sorted[1].ID)
	assert.Equal(t, "far", sorted[2].ID)

	// Input order is untouched.
	assert.Equal(t, "far", parks[0].ID)
}

func TestDistance(t *testing.T) {
	park := Park{GeoLat: 47.918, GeoLng: 106.917}
	assert.InDelta(t, 0, Distance(47.918, 106.917, park), 0.001)
	assert.Greater(t, Distance(47.93, 106.917, park), 1000.0)
}
