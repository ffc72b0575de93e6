package providerRepo

import (
	"context"

	"templeseva/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProviderRepository defines the provider reads the allocation core needs.
type ProviderRepository interface {
	// ListPriests returns every approved, non-deleted priest profile.
	ListPriests(ctx context.Context) ([]models.ProviderProfile, error)
	// GetByID returns a provider by id, or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*models.ProviderProfile, error)
	// ListByIDs returns the current roster entries for ids, read straight
	// from the store. Ids that are missing or no longer approved are omitted.
	ListByIDs(ctx context.Context, ids []string) ([]models.ProviderProfile, error)
}

// RosterSnapshot is implemented by repositories whose ListPriests may serve
// a copy older than the store.
type RosterSnapshot interface {
	MayBeStale() bool
}

// PriestRosterFilter selects the providers eligible for allocation before any
// request-specific pass runs.
func PriestRosterFilter() bson.M {
	return bson.M{
		"provider_type":  models.ProviderTypePriest,
		"profile_status": models.ProfileStatusApproved,
		"is_deleted":     bson.M{"$ne": true},
	}
}
