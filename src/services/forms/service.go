package forms

import (
	"context"
	"errors"
	"fmt"

	"formbuilder/src/logger"
	"formbuilder/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Service implements create and read for forms. There is no update or delete: a saved form is immutable.
type Service struct {
	store    Store
	cache    Cache
	validate *validator.Validate
	log      *zap.Logger
}

// NewService wires a store and an optional cache (nil disables caching).
func NewService(store Store, cache Cache, log *zap.Logger) *Service {
	return &Service{
		store:    store,
		cache:    cache,
		validate: validator.New(),
		log:      logger.OrNop(log),
	}
}

// CreateForm checks the payload shape, persists a new form and returns its id.
func (s *Service) CreateForm(ctx context.Context, req models.CreateFormRequest) (string, error) {
	if err := s.validate.StructCtx(ctx, req); err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	form := &models.Form{
		Title:       req.Title,
		HeaderImage: req.HeaderImage,
		Questions:   make([]models.Question, 0, len(req.Questions)),
	}
	for _, q := range req.Questions {
		q = normalizeQuestion(q)
		q.ID = primitive.NewObjectID().Hex()
		form.Questions = append(form.Questions, q)
	}

	id, err := s.store.InsertForm(ctx, form)
	if err != nil {
		return "", fmt.Errorf("%w: insert form: %v", models.ErrStore, err)
	}

	s.log.Info("form created",
		zap.String("formId", id.Hex()),
		zap.Int("questions", len(form.Questions)))
	return id.Hex(), nil
}

// GetForm returns the form with the given hex id. Any id is readable.
func (s *Service) GetForm(ctx context.Context, id string) (*models.Form, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed form id %q", models.ErrStore, id)
	}

	if s.cache != nil {
		form, ok, err := s.cache.Get(ctx, id)
		switch {
		case err != nil:
			s.log.Warn("form cache read failed", zap.String("formId", id), zap.Error(err))
		case ok:
			return form, nil
		}
	}

	form, err := s.store.FindFormByID(ctx, oid)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: find form: %v", models.ErrStore, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, form); err != nil {
			s.log.Warn("form cache write failed", zap.String("formId", id), zap.Error(err))
		}
	}
	return form, nil
}

// normalizeQuestion replaces nil sequences with empty ones so reads never carry null arrays.
func normalizeQuestion(q models.Question) models.Question {
	q = q.Clone()
	if q.Options == nil {
		q.Options = []string{}
	}
	if q.Grid.Rows == nil {
		q.Grid.Rows = []string{}
	}
	if q.Grid.Columns == nil {
		q.Grid.Columns = []string{}
	}
	return q
}
