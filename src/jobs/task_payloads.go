package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeResponseSubmitted = "response:submitted"

type ResponseSubmittedPayload struct {
	FormID      string    `json:"form_id"`
	SubmittedAt time.Time `json:"submitted_at"`
}

func NewResponseSubmittedTask(formID string, at time.Time) (*asynq.Task, error) {
	payload, err := json.Marshal(ResponseSubmittedPayload{FormID: formID, SubmittedAt: at})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeResponseSubmitted, payload, asynq.MaxRetry(5)), nil
}
