package allocationLogRepo

import (
	"context"
	"fmt"
	"time"

	"templeseva/database"
	"templeseva/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoAllocationLogRepo struct {
	coll *mongo.Collection
}

func NewMongoAllocationLogRepo(db *mongo.Database) *MongoAllocationLogRepo {
	return &MongoAllocationLogRepo{coll: db.Collection(database.AllocationLogsCollection)}
}

// Insert is idempotent on entry.ID so a retried task does not duplicate the log.
func (r *MongoAllocationLogRepo) Insert(ctx context.Context, entry models.AllocationLog) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"id": entry.ID},
		bson.M{"$setOnInsert": entry},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to insert allocation log %s: %w", entry.ID, err)
	}
	return nil
}
