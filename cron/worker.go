package cron

import (
	"context"
	"fmt"
	"time"

	"templeseva/config"
	"templeseva/database/repository"
	"templeseva/services/tasks"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// RedisOpt is the asynq connection shared by the API (client) and the worker.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// NewAuditMux routes audit tasks to their handlers.
func NewAuditMux(logs repository.AllocationLogRepository, logger *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeAllocationRecorded, HandleAllocationRecorded(logs, logger))
	return mux
}

// HandleAllocationRecorded persists an allocation audit entry.
func HandleAllocationRecorded(logs repository.AllocationLogRepository, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		entry, err := tasks.ParseAllocationRecorded(task)
		if err != nil {
			logger.Error("dropping malformed allocation task", zap.Error(err))
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}
		if err := logs.Insert(ctx, entry); err != nil {
			logger.Warn("failed to persist allocation log", zap.String("allocationId", entry.ID), zap.Error(err))
			return err
		}
		logger.Debug("allocation log persisted", zap.String("allocationId", entry.ID), zap.String("priestId", entry.PriestID))
		return nil
	}
}

// InitAuditWorker runs the asynq worker in the background and returns it so
// the caller can shut it down.
func InitAuditWorker(logs repository.AllocationLogRepository, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		RedisOpt(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"audit": 1,
			},
		},
	)
	mux := NewAuditMux(logs, logger)

	go func() {
		logger.Info("starting allocation audit worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				return
			}
			logger.Error("audit worker failed to start",
				zap.Int("attempt", attempts),
				zap.Int("maxAttempts", maxAttempts),
				zap.Error(err),
			)
			if attempts == maxAttempts {
				logger.Error("audit worker gave up; allocations will not be logged")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}
