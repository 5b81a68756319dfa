package cron

import (
	"context"
	"time"

	"hdmonks/config"
	"hdmonks/services/notification"
	"hdmonks/services/tasks"
	"hdmonks/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// QueueRedisOpt is the asynq connection used by both the client and the worker.
func QueueRedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// InitEmailWorker runs the email worker in the background. The returned
// server must be shut down by the caller.
func InitEmailWorker(ctx context.Context, mailer notification.Dispatcher) *asynq.Server {
	logger := utils.GetLogger()

	srv := asynq.NewServer(
		QueueRedisOpt(),
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendEmail, handleEmailTask(mailer))

	go monitorRedisConnection(ctx)

	go func() {
		logger.Info("[EmailWorker] starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Start(mux)
			if err == nil {
				return
			}
			logger.Error("[EmailWorker] failed to start worker",
				zap.Int("attempt", attempts), zap.Int("max", maxAttempts), zap.Error(err))
			if attempts == maxAttempts {
				logger.Error("[EmailWorker] max retry attempts reached, emails stay queued")
				return
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
	return srv
}

func handleEmailTask(mailer notification.Dispatcher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		msg, err := tasks.ParseEmailTask(task)
		if err != nil {
			utils.GetLogger().Error("[EmailHandler] invalid payload", zap.Error(err))
			return asynq.SkipRetry
		}
		if err := mailer.Dispatch(ctx, msg); err != nil {
			utils.GetLogger().Error("[EmailHandler] failed to send email",
				zap.String("kind", msg.Kind), zap.String("to", msg.To), zap.Error(err))
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings the queue database periodically to surface outages.
func monitorRedisConnection(ctx context.Context) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer client.Close()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := client.Ping(ctx).Err(); err != nil {
				utils.GetLogger().Warn("[EmailWorker] Redis connection lost", zap.Error(err))
			}
		}
	}
}
