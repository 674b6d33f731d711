package utils

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// DistanceKm returns the great-circle distance in kilometers between
// two lat/lng pairs.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	a := orb.Point{lng1, lat1}
	b := orb.Point{lng2, lat2}
	return geo.Distance(a, b) / 1000
}
