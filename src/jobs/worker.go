package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// StatsRecorder is the part of the stats service the worker needs.
type StatsRecorder interface {
	RecordResponse(ctx context.Context, formID string, at time.Time) error
}

func HandleResponseSubmittedTask(stats StatsRecorder, log *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var payload ResponseSubmittedPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			log.Error("payload decode error", zap.String("type", t.Type()), zap.Error(err))
			// A malformed payload will never decode, so do not retry it.
			return fmt.Errorf("decode %s payload: %v: %w", t.Type(), err, asynq.SkipRetry)
		}

		if err := stats.RecordResponse(ctx, payload.FormID, payload.SubmittedAt); err != nil {
			log.Error("failed to record response", zap.String("formId", payload.FormID), zap.Error(err))
			return err
		}

		log.Debug("response recorded", zap.String("formId", payload.FormID))
		return nil
	}
}

func NewServeMux(stats StatsRecorder, log *zap.Logger) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Handle(TypeResponseSubmitted, HandleResponseSubmittedTask(stats, log))
	return mux
}

// NewServer builds the worker that consumes the queue on the given Redis address.
func NewServer(redisAddr string, log *zap.Logger) *asynq.Server {
	return asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisAddr},
		asynq.Config{
			Concurrency: 5,
			Logger:      log.Sugar(),
		},
	)
}
