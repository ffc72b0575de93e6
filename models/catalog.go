package models

// Pooja is a bookable ritual from the catalogue.
type Pooja struct {
	ID        string  `bson:"id" json:"id"`
	Name      string  `bson:"name" json:"name"`
	Category  string  `bson:"category" json:"category"`
	BasePrice float64 `bson:"base_price" json:"base_price"`
	IsDeleted bool    `bson:"is_deleted" json:"is_deleted"`
}

type Temple struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	PrimaryDeity string    `bson:"primary_deity" json:"primary_deity"`
	City         string    `bson:"city" json:"city"`
	Location     *GeoPoint `bson:"location,omitempty" json:"location,omitempty"`
	IsDeleted    bool      `bson:"is_deleted" json:"is_deleted"`
}
