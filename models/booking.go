package models

import "time"

const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
)

// ActiveBookingStatuses are the statuses that hold a provider's slot.
var ActiveBookingStatuses = []string{BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress}

// Booking represents a reservation record. Read-only to the allocation core.
type Booking struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"provider_id" json:"provider_id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	PoojaID     string    `bson:"pooja_id,omitempty" json:"pooja_id,omitempty"`
	TempleID    string    `bson:"temple_id,omitempty" json:"temple_id,omitempty"`
	ServiceMode string    `bson:"service_mode" json:"service_mode"`
	Date        string    `bson:"date" json:"date"`           // "YYYY-MM-DD"
	TimeSlot    string    `bson:"time_slot" json:"time_slot"` // "HH:MM"
	Status      string    `bson:"status" json:"status"`
	IsDeleted   bool      `bson:"is_deleted" json:"is_deleted"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
