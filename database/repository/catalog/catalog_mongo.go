package catalogRepo

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

type MongoCatalogRepo struct {
	poojas  *mongo.Collection
	temples *mongo.Collection
}

func NewMongoCatalogRepo(db *mongo.Database) *MongoCatalogRepo {
	return &MongoCatalogRepo{
		poojas:  db.Collection(database.PoojasCollection),
		temples: db.Collection(database.TemplesCollection),
	}
}

func liveByID(id string) bson.M {
	return bson.M{"id": id, "is_deleted": bson.M{"$ne": true}}
}

func (r *MongoCatalogRepo) GetPooja(ctx context.Context, id string) (*models.Pooja, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var pooja models.Pooja
	if err := r.poojas.FindOne(ctx, liveByID(id)).Decode(&pooja); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pooja %s: %w", id, err)
	}
	return &pooja, nil
}

func (r *MongoCatalogRepo) GetTemple(ctx context.Context, id string) (*models.Temple, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var temple models.Temple
	if err := r.temples.FindOne(ctx, liveByID(id)).Decode(&temple); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch temple %s: %w", id, err)
	}
	return &temple, nil
}
