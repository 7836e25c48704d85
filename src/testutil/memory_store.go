package testutil

import (
	"context"
	"fmt"
	"sync"

	"formbuilder/src/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore satisfies the forms and responses store interfaces without a database.
type MemoryStore struct {
	mu        sync.Mutex
	forms     map[primitive.ObjectID]models.Form
	responses []models.Response
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{forms: map[primitive.ObjectID]models.Form{}}
}

func (s *MemoryStore) InsertForm(_ context.Context, form *models.Form) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	form.ID = primitive.NewObjectID()
	s.forms[form.ID] = *form
	return form.ID, nil
}

func (s *MemoryStore) FindFormByID(_ context.Context, id primitive.ObjectID) (*models.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.forms[id]
	if !ok {
		return nil, fmt.Errorf("form %s: %w", id.Hex(), models.ErrNotFound)
	}
	return &f, nil
}

func (s *MemoryStore) InsertResponse(_ context.Context, resp *models.Response) (primitive.ObjectID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	resp.ID = primitive.NewObjectID()
	s.responses = append(s.responses, *resp)
	return resp.ID, nil
}

// SavedResponses returns a copy of every stored response.
func (s *MemoryStore) SavedResponses() []models.Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Response(nil), s.responses...)
}
