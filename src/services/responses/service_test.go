package responses

import (
	"context"
	"errors"
	"testing"
	"time"

	"formbuilder/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) InsertResponse(ctx context.Context, resp *models.Response) (primitive.ObjectID, error) {
	args := m.Called(ctx, resp)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) ResponseSubmitted(ctx context.Context, formID string, at time.Time) error {
	return m.Called(ctx, formID, at).Error(0)
}

func TestSubmitResponseToAnyFormID(t *testing.T) {
	for _, formID := range []string{"X", primitive.NewObjectID().Hex(), ""} {
		store := new(MockStore)
		var saved *models.Response
		store.On("InsertResponse", mock.Anything, mock.AnythingOfType("*models.Response")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*models.Response) }).
			Return(primitive.NewObjectID(), nil)

		err := NewService(store, nil, nil).SubmitResponse(context.Background(), models.SubmitResponseRequest{
			FormID:    formID,
			Responses: []models.Answer{{QuestionID: "q1", Answer: true}},
		})
		require.NoError(t, err, formID)
		assert.Equal(t, formID, saved.FormID)
		assert.Equal(t, []models.Answer{{QuestionID: "q1", Answer: true}}, saved.Responses)
		assert.False(t, saved.SubmittedAt.IsZero())
	}
}

func TestSubmitResponseTwiceCreatesTwoRecords(t *testing.T) {
	store := new(MockStore)
	store.On("InsertResponse", mock.Anything, mock.Anything).Return(primitive.NewObjectID(), nil)
	svc := NewService(store, nil, nil)

	req := models.SubmitResponseRequest{FormID: "f1"}
	require.NoError(t, svc.SubmitResponse(context.Background(), req))
	require.NoError(t, svc.SubmitResponse(context.Background(), req))
	store.AssertNumberOfCalls(t, "InsertResponse", 2)
}

func TestSubmitResponseStoreFailure(t *testing.T) {
	store := new(MockStore)
	store.On("InsertResponse", mock.Anything, mock.Anything).Return(primitive.NilObjectID, errors.New("no primary"))
	notifier := new(MockNotifier)

	err := NewService(store, notifier, nil).SubmitResponse(context.Background(), models.SubmitResponseRequest{FormID: "f1"})
	assert.ErrorIs(t, err, models.ErrStore)
	notifier.AssertNotCalled(t, "ResponseSubmitted", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitResponseNotifies(t *testing.T) {
	store := new(MockStore)
	store.On("InsertResponse", mock.Anything, mock.Anything).Return(primitive.NewObjectID(), nil)
	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("ResponseSubmitted", mock.Anything, "f1", at).Return(nil)
		svc := NewService(store, notifier, nil)
		svc.now = func() time.Time { return at }

		require.NoError(t, svc.SubmitResponse(context.Background(), models.SubmitResponseRequest{FormID: "f1"}))
		notifier.AssertExpectations(t)
	})

	t.Run("enqueue failure does not fail submit", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("ResponseSubmitted", mock.Anything, "f1", at).Return(errors.New("redis down"))
		svc := NewService(store, notifier, nil)
		svc.now = func() time.Time { return at }

		assert.NoError(t, svc.SubmitResponse(context.Background(), models.SubmitResponseRequest{FormID: "f1"}))
	})
}

func TestMongoStoreInsertResponse(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		resp := &models.Response{FormID: "X", Responses: []models.Answer{{QuestionID: "q1", Answer: "cell"}}}
		id, err := NewMongoStore(mt.Coll).InsertResponse(context.Background(), resp)
		require.NoError(mt, err)
		assert.Equal(mt, id, resp.ID)
	})

	mt.Run("failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad value"}))
		_, err := NewMongoStore(mt.Coll).InsertResponse(context.Background(), &models.Response{})
		assert.Error(mt, err)
	})
}
