package bookingRepo

import (
	"context"

	"templeseva/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository is the read side of bookings used for conflict checks.
type BookingRepository interface {
	// FindConflicts returns active bookings held by any of providerIDs at the exact date and slot.
	FindConflicts(ctx context.Context, date, timeSlot string, providerIDs []string) ([]models.Booking, error)
}

// ConflictFilter matches bookings that hold a provider's slot.
func ConflictFilter(date, timeSlot string, providerIDs []string) bson.M {
	return bson.M{
		"date":        date,
		"time_slot":   timeSlot,
		"provider_id": bson.M{"$in": providerIDs},
		"status":      bson.M{"$in": models.ActiveBookingStatuses},
		"is_deleted":  bson.M{"$ne": true},
	}
}
