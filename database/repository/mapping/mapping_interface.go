package mappingRepo

import (
	"context"

	"templeseva/models"

	"go.mongodb.org/mongo-driver/bson"
)

// MappingRepository looks up which priests can perform a pooja.
type MappingRepository interface {
	// FindActive returns active, non-deleted mappings of poojaID restricted to priestIDs.
	FindActive(ctx context.Context, poojaID string, priestIDs []string) ([]models.PriestPoojaMapping, error)
}

func ActiveMappingFilter(poojaID string, priestIDs []string) bson.M {
	return bson.M{
		"pooja_id":   poojaID,
		"priest_id":  bson.M{"$in": priestIDs},
		"is_active":  true,
		"is_deleted": bson.M{"$ne": true},
	}
}
