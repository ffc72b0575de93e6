package allocationLogRepo

import (
	"context"

	"templeseva/models"
)

// AllocationLogRepository persists the audit trail of allocations.
type AllocationLogRepository interface {
	Insert(ctx context.Context, entry models.AllocationLog) error
}
