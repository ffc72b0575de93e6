package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"templeseva/models"

	"github.com/hibiken/asynq"
)

const TypeAllocationRecorded = "allocation:recorded"

func NewAllocationRecordedTask(entry models.AllocationLog) (*asynq.Task, error) {
	b, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeAllocationRecorded, b, asynq.MaxRetry(5)), nil
}

func ParseAllocationRecorded(task *asynq.Task) (models.AllocationLog, error) {
	var entry models.AllocationLog
	if err := json.Unmarshal(task.Payload(), &entry); err != nil {
		return entry, fmt.Errorf("invalid %s payload: %w", TypeAllocationRecorded, err)
	}
	return entry, nil
}

// Enqueuer is the subset of *asynq.Client used here.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// AsynqRecorder hands allocation audit entries to the background worker.
type AsynqRecorder struct {
	Client Enqueuer
	Queue  string
}

func NewAsynqRecorder(client Enqueuer) *AsynqRecorder {
	return &AsynqRecorder{Client: client, Queue: "audit"}
}

func (r *AsynqRecorder) RecordAllocation(ctx context.Context, entry models.AllocationLog) error {
	task, err := NewAllocationRecordedTask(entry)
	if err != nil {
		return err
	}
	if _, err := r.Client.EnqueueContext(ctx, task, asynq.Queue(r.Queue), asynq.TaskID(entry.ID)); err != nil {
		return fmt.Errorf("failed to enqueue allocation %s: %w", entry.ID, err)
	}
	return nil
}
