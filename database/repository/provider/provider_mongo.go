package providerRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"templeseva/database"
	"templeseva/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoProviderRepo implements ProviderRepository using MongoDB.
type MongoProviderRepo struct {
	coll *mongo.Collection
}

// NewMongoProviderRepo creates a new instance of ProviderRepository using MongoDB.
func NewMongoProviderRepo(db *mongo.Database) *MongoProviderRepo {
	return &MongoProviderRepo{coll: db.Collection(database.ProvidersCollection)}
}

func (r *MongoProviderRepo) ListPriests(ctx context.Context) ([]models.ProviderProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, PriestRosterFilter())
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve priests: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.ProviderProfile
	for cursor.Next(ctx) {
		var p models.ProviderProfile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode provider: %w", err)
		}
		providers = append(providers, p)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return providers, nil
}

func (r *MongoProviderRepo) ListByIDs(ctx context.Context, ids []string) ([]models.ProviderProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := PriestRosterFilter()
	filter["id"] = bson.M{"$in": ids}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve priests by id: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.ProviderProfile
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	return providers, nil
}

func (r *MongoProviderRepo) GetByID(ctx context.Context, id string) (*models.ProviderProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var provider models.ProviderProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&provider); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch provider with id %s: %w", id, err)
	}
	return &provider, nil
}
