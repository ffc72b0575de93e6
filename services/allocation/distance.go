package allocation

import (
	"math"

	"templeseva/models"
)

// DistanceFunc returns the distance in km between two points.
type DistanceFunc func(a, b models.LatLng) float64

// Haversine is the great-circle distance in km.
func Haversine(a, b models.LatLng) float64 {
	const R = 6371
	dLat := (b.Lat - a.Lat) * (math.Pi / 180)
	dLon := (b.Lng - a.Lng) * (math.Pi / 180)
	lat1Rad := a.Lat * (math.Pi / 180)
	lat2Rad := b.Lat * (math.Pi / 180)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return R * c
}
