package mappingRepo

import (
	"context"
	"fmt"
	"time"

	"templeseva/database"
	"templeseva/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoMappingRepo struct {
	coll *mongo.Collection
}

func NewMongoMappingRepo(db *mongo.Database) *MongoMappingRepo {
	return &MongoMappingRepo{coll: db.Collection(database.MappingsCollection)}
}

func (r *MongoMappingRepo) FindActive(ctx context.Context, poojaID string, priestIDs []string) ([]models.PriestPoojaMapping, error) {
	if poojaID == "" || len(priestIDs) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, ActiveMappingFilter(poojaID, priestIDs))
	if err != nil {
		return nil, fmt.Errorf("mapping query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var mappings []models.PriestPoojaMapping
	if err := cursor.All(ctx, &mappings); err != nil {
		return nil, fmt.Errorf("failed to decode mappings: %w", err)
	}
	return mappings, nil
}

func (r *MongoMappingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "pooja_id", Value: 1}, {Key: "priest_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create mapping indexes: %w", err)
	}
	return nil
}
