package cron

import (
	"context"
	"errors"
	"testing"

	"templeseva/models"
	"templeseva/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockLogRepo struct {
	mock.Mock
}

func (m *mockLogRepo) Insert(ctx context.Context, entry models.AllocationLog) error {
	return m.Called(ctx, entry).Error(0)
}

func TestHandleAllocationRecordedPersists(t *testing.T) {
	ctx := context.Background()
	entry := models.AllocationLog{ID: "alloc-1", PriestID: "p1", Scheme: "weighted"}
	task, err := tasks.NewAllocationRecordedTask(entry)
	require.NoError(t, err)

	repo := &mockLogRepo{}
	repo.On("Insert", ctx, mock.MatchedBy(func(e models.AllocationLog) bool {
		return e.ID == "alloc-1" && e.PriestID == "p1"
	})).Return(nil)

	require.NoError(t, HandleAllocationRecorded(repo, zap.NewNop())(ctx, task))
	repo.AssertExpectations(t)
}

func TestHandleAllocationRecordedRetriesStoreFailure(t *testing.T) {
	ctx := context.Background()
	task, err := tasks.NewAllocationRecordedTask(models.AllocationLog{ID: "alloc-2"})
	require.NoError(t, err)

	repo := &mockLogRepo{}
	repo.On("Insert", ctx, mock.Anything).Return(errors.New("timeout"))

	err = HandleAllocationRecorded(repo, zap.NewNop())(ctx, task)
	assert.EqualError(t, err, "timeout")
	assert.False(t, errors.Is(err, asynq.SkipRetry))
}

func TestHandleAllocationRecordedSkipsMalformed(t *testing.T) {
	repo := &mockLogRepo{}

	err := HandleAllocationRecorded(repo, zap.NewNop())(context.Background(), asynq.NewTask(tasks.TypeAllocationRecorded, []byte("not json")))
	assert.True(t, errors.Is(err, asynq.SkipRetry))
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
