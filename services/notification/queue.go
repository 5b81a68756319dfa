package notification

import (
	"context"
	"fmt"

	"hdmonks/models"
	"hdmonks/services/tasks"

	"github.com/hibiken/asynq"
)

// Enqueuer is the part of *asynq.Client the queue dispatcher needs.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// QueueDispatcher hands messages to the background email worker.
type QueueDispatcher struct {
	Client Enqueuer
}

func NewQueueDispatcher(client Enqueuer) *QueueDispatcher {
	return &QueueDispatcher{Client: client}
}

func (q *QueueDispatcher) Dispatch(ctx context.Context, msg models.EmailMessage) error {
	task, opts, err := tasks.NewEmailTask(msg)
	if err != nil {
		return fmt.Errorf("build email task: %w", err)
	}
	if _, err := q.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue email task: %w", err)
	}
	return nil
}
