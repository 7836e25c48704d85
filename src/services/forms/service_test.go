package forms

import (
	"context"
	"errors"
	"testing"

	"formbuilder/src/models"
	"formbuilder/src/testutil"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) InsertForm(ctx context.Context, form *models.Form) (primitive.ObjectID, error) {
	args := m.Called(ctx, form)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *MockStore) FindFormByID(ctx context.Context, id primitive.ObjectID) (*models.Form, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Form), args.Error(1)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, id string) (*models.Form, bool, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Form), args.Bool(1), args.Error(2)
}

func (m *MockCache) Set(ctx context.Context, form *models.Form) error {
	return m.Called(ctx, form).Error(0)
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	svc := NewService(testutil.NewMemoryStore(), nil, nil)
	req := testutil.SurveyRequest()

	id, err := svc.CreateForm(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := svc.GetForm(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID.Hex())

	want := testutil.FormFromRequest(req)
	diff := cmp.Diff(want, got,
		cmpopts.IgnoreFields(models.Form{}, "ID"),
		cmpopts.IgnoreFields(models.Question{}, "ID"))
	assert.Empty(t, diff)
}

func TestCreateFormScenario(t *testing.T) {
	svc := NewService(testutil.NewMemoryStore(), nil, nil)
	req := models.CreateFormRequest{
		Title: "Survey",
		Questions: []models.Question{
			{Type: models.CheckBox, Label: "Pick one", Options: []string{"A", "B"}},
		},
	}

	id, err := svc.CreateForm(context.Background(), req)
	require.NoError(t, err)

	got, err := svc.GetForm(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Survey", got.Title)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, "Pick one", got.Questions[0].Label)
	assert.Equal(t, []string{"A", "B"}, got.Questions[0].Options)
}

func TestCreateFormAssignsQuestionIDsAndNormalizes(t *testing.T) {
	store := new(MockStore)
	oid := primitive.NewObjectID()
	var saved *models.Form
	store.On("InsertForm", mock.Anything, mock.AnythingOfType("*models.Form")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*models.Form) }).
		Return(oid, nil)

	svc := NewService(store, nil, nil)
	id, err := svc.CreateForm(context.Background(), models.CreateFormRequest{
		Questions: []models.Question{
			{ID: "client-local", Type: models.Text, Label: "Name"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), id)

	require.Len(t, saved.Questions, 1)
	q := saved.Questions[0]
	assert.NotEqual(t, "client-local", q.ID)
	_, err = primitive.ObjectIDFromHex(q.ID)
	assert.NoError(t, err)
	assert.NotNil(t, q.Options)
	assert.NotNil(t, q.Grid.Rows)
	assert.NotNil(t, q.Grid.Columns)
	store.AssertExpectations(t)
}

func TestCreateFormRejectsUnknownQuestionType(t *testing.T) {
	store := new(MockStore)
	svc := NewService(store, nil, nil)

	_, err := svc.CreateForm(context.Background(), models.CreateFormRequest{
		Questions: []models.Question{{Type: "Slider"}},
	})
	assert.ErrorIs(t, err, models.ErrValidation)
	store.AssertNotCalled(t, "InsertForm", mock.Anything, mock.Anything)
}

func TestCreateFormStoreFailure(t *testing.T) {
	store := new(MockStore)
	store.On("InsertForm", mock.Anything, mock.Anything).Return(primitive.NilObjectID, errors.New("connection reset"))

	svc := NewService(store, nil, nil)
	_, err := svc.CreateForm(context.Background(), testutil.SurveyRequest())
	assert.ErrorIs(t, err, models.ErrStore)
}

func TestGetFormErrors(t *testing.T) {
	t.Run("malformed id", func(t *testing.T) {
		svc := NewService(new(MockStore), nil, nil)
		_, err := svc.GetForm(context.Background(), "not-an-id")
		assert.ErrorIs(t, err, models.ErrStore)
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(testutil.NewMemoryStore(), nil, nil)
		_, err := svc.GetForm(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.NotErrorIs(t, err, models.ErrStore)
	})

	t.Run("store failure", func(t *testing.T) {
		store := new(MockStore)
		store.On("FindFormByID", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
		svc := NewService(store, nil, nil)
		_, err := svc.GetForm(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(t, err, models.ErrStore)
	})
}

func TestGetFormUsesCache(t *testing.T) {
	oid := primitive.NewObjectID()
	cached := &models.Form{ID: oid, Title: "Cached"}

	t.Run("hit skips store", func(t *testing.T) {
		store := new(MockStore)
		cache := new(MockCache)
		cache.On("Get", mock.Anything, oid.Hex()).Return(cached, true, nil)

		got, err := NewService(store, cache, nil).GetForm(context.Background(), oid.Hex())
		require.NoError(t, err)
		assert.Equal(t, "Cached", got.Title)
		store.AssertNotCalled(t, "FindFormByID", mock.Anything, mock.Anything)
	})

	t.Run("miss fills cache", func(t *testing.T) {
		store := new(MockStore)
		cache := new(MockCache)
		cache.On("Get", mock.Anything, oid.Hex()).Return(nil, false, nil)
		store.On("FindFormByID", mock.Anything, oid).Return(cached, nil)
		cache.On("Set", mock.Anything, cached).Return(nil)

		_, err := NewService(store, cache, nil).GetForm(context.Background(), oid.Hex())
		require.NoError(t, err)
		cache.AssertExpectations(t)
	})

	t.Run("cache errors fall through", func(t *testing.T) {
		store := new(MockStore)
		cache := new(MockCache)
		cache.On("Get", mock.Anything, oid.Hex()).Return(nil, false, errors.New("redis down"))
		store.On("FindFormByID", mock.Anything, oid).Return(cached, nil)
		cache.On("Set", mock.Anything, cached).Return(errors.New("redis down"))

		got, err := NewService(store, cache, nil).GetForm(context.Background(), oid.Hex())
		require.NoError(t, err)
		assert.Equal(t, "Cached", got.Title)
	})
}
