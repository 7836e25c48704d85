package responses

import (
	"context"

	"formbuilder/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store persists submitted responses. Responses are never read back.
type Store interface {
	InsertResponse(ctx context.Context, resp *models.Response) (primitive.ObjectID, error)
}

type MongoStore struct {
	responses *mongo.Collection
}

func NewMongoStore(responses *mongo.Collection) *MongoStore {
	return &MongoStore{responses: responses}
}

func (s *MongoStore) InsertResponse(ctx context.Context, resp *models.Response) (primitive.ObjectID, error) {
	resp.ID = primitive.NewObjectID()
	res, err := s.responses.InsertOne(ctx, resp)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		resp.ID = oid
	}
	return resp.ID, nil
}
