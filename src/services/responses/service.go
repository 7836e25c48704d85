package responses

import (
	"context"
	"fmt"
	"time"

	"formbuilder/src/logger"
	"formbuilder/src/models"

	"go.uber.org/zap"
)

// Notifier is told about every stored response. Implementations must not block for long.
type Notifier interface {
	ResponseSubmitted(ctx context.Context, formID string, at time.Time) error
}

type Service struct {
	store    Store
	notifier Notifier
	log      *zap.Logger
	now      func() time.Time
}

// NewService wires a store and an optional notifier (nil disables notifications).
func NewService(store Store, notifier Notifier, log *zap.Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		log:      logger.OrNop(log),
		now:      time.Now,
	}
}

// SubmitResponse stores the answers verbatim. The form id is not checked against saved forms,
// question ids are not matched to questions and repeated submissions each create a record.
func (s *Service) SubmitResponse(ctx context.Context, req models.SubmitResponseRequest) error {
	answers := req.Responses
	if answers == nil {
		answers = []models.Answer{}
	}
	resp := &models.Response{
		FormID:      req.FormID,
		Responses:   answers,
		SubmittedAt: s.now().UTC(),
	}

	id, err := s.store.InsertResponse(ctx, resp)
	if err != nil {
		return fmt.Errorf("%w: insert response: %v", models.ErrStore, err)
	}

	s.log.Info("response saved",
		zap.String("responseId", id.Hex()),
		zap.String("formId", resp.FormID),
		zap.Int("answers", len(resp.Responses)))

	if s.notifier != nil {
		if err := s.notifier.ResponseSubmitted(ctx, resp.FormID, resp.SubmittedAt); err != nil {
			s.log.Warn("could not enqueue response notification", zap.String("formId", resp.FormID), zap.Error(err))
		}
	}
	return nil
}
