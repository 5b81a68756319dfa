package tasks

import (
	"encoding/json"
	"time"

	"hdmonks/models"

	"github.com/hibiken/asynq"
)

const TypeSendEmail = "email:send"

// NewEmailTask wraps msg in an asynq task retried a few times before it is archived.
func NewEmailTask(msg models.EmailMessage) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(msg)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendEmail, b)
	opts := []asynq.Option{
		asynq.MaxRetry(5),
		asynq.Timeout(30 * time.Second),
	}
	return task, opts, nil
}

// ParseEmailTask decodes the payload written by NewEmailTask.
func ParseEmailTask(task *asynq.Task) (models.EmailMessage, error) {
	var msg models.EmailMessage
	err := json.Unmarshal(task.Payload(), &msg)
	return msg, err
}
