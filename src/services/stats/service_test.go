package stats

import (
	"context"
	"testing"
	"time"

	"formbuilder/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestStatsMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("record upserts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: "x"}}}},
		))
		svc := NewService(NewMongoStore(mt.Coll))
		require.NoError(mt, svc.RecordResponse(context.Background(), "f1", time.Now()))
	})

	mt.Run("unknown form has zero counts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.form_stats", mtest.FirstBatch))
		st, err := NewService(NewMongoStore(mt.Coll)).GetStats(context.Background(), "nope")
		require.NoError(mt, err)
		assert.Equal(mt, &models.FormStats{FormID: "nope"}, st)
	})

	mt.Run("existing counts decode", func(mt *mtest.T) {
		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "db.form_stats", mtest.FirstBatch, bson.D{
			{Key: "formId", Value: "f1"},
			{Key: "responseCount", Value: int64(3)},
			{Key: "lastResponseAt", Value: at},
		}))
		st, err := NewService(NewMongoStore(mt.Coll)).GetStats(context.Background(), "f1")
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), st.ResponseCount)
		require.NotNil(mt, st.LastResponseAt)
		assert.True(mt, at.Equal(*st.LastResponseAt))
	})

	mt.Run("store failure is wrapped", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "bad value"}))
		_, err := NewService(NewMongoStore(mt.Coll)).GetStats(context.Background(), "f1")
		assert.ErrorIs(mt, err, models.ErrStore)
	})
}
