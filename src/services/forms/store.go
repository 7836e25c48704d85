package forms

import (
	"context"
	"errors"
	"fmt"

	"formbuilder/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store persists forms and assigns their ids.
type Store interface {
	InsertForm(ctx context.Context, form *models.Form) (primitive.ObjectID, error)
	FindFormByID(ctx context.Context, id primitive.ObjectID) (*models.Form, error)
}

// MongoStore keeps one document per form, questions embedded in order.
type MongoStore struct {
	forms *mongo.Collection
}

func NewMongoStore(forms *mongo.Collection) *MongoStore {
	return &MongoStore{forms: forms}
}

func (s *MongoStore) InsertForm(ctx context.Context, form *models.Form) (primitive.ObjectID, error) {
	if form.ID.IsZero() {
		form.ID = primitive.NewObjectID()
	}
	res, err := s.forms.InsertOne(ctx, form)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		form.ID = oid
	}
	return form.ID, nil
}

func (s *MongoStore) FindFormByID(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	var form models.Form
	err := s.forms.FindOne(ctx, bson.M{"_id": id}).Decode(&form)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("form %s: %w", id.Hex(), models.ErrNotFound)
		}
		return nil, err
	}
	return &form, nil
}
