package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"templeseva/models"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEnqueuer struct {
	mock.Mock
}

func (m *mockEnqueuer) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task, opts)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

func sampleEntry() models.AllocationLog {
	return models.AllocationLog{
		ID:             "alloc-1",
		UserID:         "user-1",
		Scheme:         "weighted",
		PriestID:       "p1",
		Score:          87,
		ScoreBreakdown: models.ScoreBreakdown{"location": 30},
		AlternativeIDs: []string{"p2"},
		Request: models.AllocationRequest{
			ServiceMode:  models.ServiceModeVirtual,
			SelectedDate: "2026-10-18",
			TimeSlot:     "10:00",
		},
		CreatedAt: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
	}
}

func TestAllocationTaskPayloadRoundTrip(t *testing.T) {
	entry := sampleEntry()

	task, err := NewAllocationRecordedTask(entry)
	require.NoError(t, err)
	assert.Equal(t, TypeAllocationRecorded, task.Type())

	got, err := ParseAllocationRecorded(task)
	require.NoError(t, err)
	assert.Equal(t, entry, got)
}

func TestParseAllocationRecordedRejectsGarbage(t *testing.T) {
	_, err := ParseAllocationRecorded(asynq.NewTask(TypeAllocationRecorded, []byte("{")))
	assert.Error(t, err)
}

func TestAsynqRecorderEnqueues(t *testing.T) {
	ctx := context.Background()
	client := &mockEnqueuer{}
	client.On("EnqueueContext", ctx, mock.MatchedBy(func(task *asynq.Task) bool {
		return task.Type() == TypeAllocationRecorded
	}), mock.Anything).Return(&asynq.TaskInfo{ID: "alloc-1"}, nil)

	err := NewAsynqRecorder(client).RecordAllocation(ctx, sampleEntry())
	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestAsynqRecorderWrapsEnqueueError(t *testing.T) {
	ctx := context.Background()
	client := &mockEnqueuer{}
	client.On("EnqueueContext", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("redis down"))

	err := NewAsynqRecorder(client).RecordAllocation(ctx, sampleEntry())
	assert.ErrorContains(t, err, "alloc-1")
	assert.ErrorContains(t, err, "redis down")
}
