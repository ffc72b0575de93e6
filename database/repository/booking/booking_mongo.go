package bookingRepo

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

type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection(database.BookingsCollection)}
}

func (r *MongoBookingRepo) FindConflicts(ctx context.Context, date, timeSlot string, providerIDs []string) ([]models.Booking, error) {
	if len(providerIDs) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1, "provider_id": 1, "date": 1, "time_slot": 1, "status": 1})
	cursor, err := r.coll.Find(ctx, ConflictFilter(date, timeSlot, providerIDs), opts)
	if err != nil {
		return nil, fmt.Errorf("conflict query failed: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// EnsureIndexes creates the compound index backing the conflict query.
func (r *MongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: 1},
			{Key: "time_slot", Value: 1},
			{Key: "provider_id", Value: 1},
			{Key: "status", Value: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
