package models

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// LatLng returns the point as a coordinate pair. ok is false when the
// point does not carry both coordinates.
func (g *GeoPoint) LatLng() (LatLng, bool) {
	if g == nil || len(g.Coordinates) < 2 {
		return LatLng{}, false
	}
	return LatLng{Lat: g.Coordinates[1], Lng: g.Coordinates[0]}, true
}

// LatLng is the coordinate shape sent by the UI.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
