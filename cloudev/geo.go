package cloudev

import (
	"sort"

	geo "github.com/kellydunn/golang-geo"
)

// Distance returns the great-circle distance in meters from a point to a
// park's coordinates.
func Distance(lat, lng float64, park Park) float64 {
	p1 := geo.NewPoint(lat, lng)
	p2 := geo.NewPoint(park.GeoLat, park.GeoLng)
	return p1.GreatCircleDistance(p2) * 1000
}

// SortParksByDistance returns a copy of parks ordered by distance from
// the given point, nearest first. The input slice is left untouched.
func SortParksByDistance(parks []Park, lat, lng float64) []Park {
	sorted := make([]Park, len(parks))
	copy(sorted, parks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Distance(lat, lng, sorted[i]) < Distance(lat, lng, sorted[j])
	})
	return sorted
}
