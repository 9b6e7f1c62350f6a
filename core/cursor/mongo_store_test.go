package cursor

import (
	"context"
	"testing"

	"hotel-indexer/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ns := "hotel_indexer." + TableName

	mt.Run("LoadMissing", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		c, err := NewMongoStore(mt.DB).Load(context.Background(), streamKey)
		assert.NoError(mt, err)
		assert.Nil(mt, c)
	})

	mt.Run("LoadExisting", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "key", Value: streamKey},
			{Key: "cursor", Value: "7"},
			{Key: "txDigest", Value: "D7"},
			{Key: "version", Value: int64(3)},
		}))

		c, err := NewMongoStore(mt.DB).Load(context.Background(), streamKey)
		require.NoError(mt, err)
		require.NotNil(mt, c)
		assert.Equal(mt, ledger.EventID{TxDigest: "D7", EventSeq: "7"}, c.Position())
		assert.Equal(mt, int64(3), c.Version)
	})

	mt.Run("FirstSaveInserts", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		c, err := NewMongoStore(mt.DB).Save(context.Background(), streamKey, ledger.EventID{TxDigest: "D1", EventSeq: "0"}, 0)
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), c.Version)
	})

	mt.Run("FirstSaveDuplicate", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		_, err := NewMongoStore(mt.DB).Save(context.Background(), streamKey, ledger.EventID{TxDigest: "D1", EventSeq: "0"}, 0)
		assert.ErrorIs(mt, err, ErrConflict)
	})

	mt.Run("CompareAndSet", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "n", Value: 1},
			{Key: "nModified", Value: 1},
		})

		c, err := NewMongoStore(mt.DB).Save(context.Background(), streamKey, ledger.EventID{TxDigest: "D2", EventSeq: "1"}, 1)
		require.NoError(mt, err)
		assert.Equal(mt, int64(2), c.Version)
	})

	mt.Run("StaleVersion", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "n", Value: 0},
			{Key: "nModified", Value: 0},
		})

		_, err := NewMongoStore(mt.DB).Save(context.Background(), streamKey, ledger.EventID{TxDigest: "D2", EventSeq: "1"}, 4)
		assert.ErrorIs(mt, err, ErrConflict)
	})

	mt.Run("CommandError", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		_, err := NewMongoStore(mt.DB).Save(context.Background(), streamKey, ledger.EventID{TxDigest: "D2", EventSeq: "1"}, 1)
		assert.Error(mt, err)
		assert.NotErrorIs(mt, err, ErrConflict)
	})
}
