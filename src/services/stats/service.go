package stats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"formbuilder/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store keeps per-form response counters.
type Store interface {
	RecordResponse(ctx context.Context, formID string, at time.Time) error
	FindStats(ctx context.Context, formID string) (*models.FormStats, error)
}

type MongoStore struct {
	stats *mongo.Collection
}

func NewMongoStore(stats *mongo.Collection) *MongoStore {
	return &MongoStore{stats: stats}
}

// RecordResponse upserts the counter; lastResponseAt only moves forward even if tasks run out of order.
func (s *MongoStore) RecordResponse(ctx context.Context, formID string, at time.Time) error {
	_, err := s.stats.UpdateOne(ctx,
		bson.M{"formId": formID},
		bson.M{
			"$inc": bson.M{"responseCount": 1},
			"$max": bson.M{"lastResponseAt": at},
		},
		options.Update().SetUpsert(true),
	)
	return err
}

func (s *MongoStore) FindStats(ctx context.Context, formID string) (*models.FormStats, error) {
	var out models.FormStats
	err := s.stats.FindOne(ctx, bson.M{"formId": formID}).Decode(&out)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return &models.FormStats{FormID: formID}, nil
		}
		return nil, err
	}
	return &out, nil
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// GetStats returns zero counts for forms that never received a response, including unknown ids.
func (s *Service) GetStats(ctx context.Context, formID string) (*models.FormStats, error) {
	st, err := s.store.FindStats(ctx, formID)
	if err != nil {
		return nil, fmt.Errorf("%w: find stats: %v", models.ErrStore, err)
	}
	return st, nil
}

func (s *Service) RecordResponse(ctx context.Context, formID string, at time.Time) error {
	if err := s.store.RecordResponse(ctx, formID, at); err != nil {
		return fmt.Errorf("%w: record response: %v", models.ErrStore, err)
	}
	return nil
}
