package jobs

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
)

// Enqueuer hands response notifications to the Asynq queue.
type Enqueuer struct {
	client *asynq.Client
}

func NewEnqueuer(client *asynq.Client) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) ResponseSubmitted(ctx context.Context, formID string, at time.Time) error {
	task, err := NewResponseSubmittedTask(formID, at)
	if err != nil {
		return err
	}
	_, err = e.client.EnqueueContext(ctx, task)
	return err
}
