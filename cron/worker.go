package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"gatherspace/config"
	"gatherspace/models"
	"gatherspace/services/tasks"
)

// InitFollowUpWorker runs the async worker in background. It processes the
// follow-up tasks enqueued when booking requests are submitted.
func InitFollowUpWorker(logger *zap.Logger) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingFollowUp, handleFollowUpTask(logger))

	// Start async worker with retry logic
	go func() {
		log.Println("[FollowUpWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[FollowUpWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[FollowUpWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleFollowUpTask(logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.FollowUpPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid follow-up payload", zap.Error(err))
			return err
		}

		// The venue team works requests by hand; the follow-up surfaces the
		// pending request a day after submission.
		logger.Info("booking follow-up due",
			zap.String("reference", p.Reference),
			zap.String("venue", p.VenueName),
			zap.String("userID", p.UserID),
			zap.String("eventDate", p.EventDate))
		return nil
	}
}

// NewTaskClient returns an asynq client on the task queue DB.
func NewTaskClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
}
