package checks

import (
	"context"
	"errors"
	"testing"

	"hotel-indexer/core/database"
	"hotel-indexer/core/ledger"
	ledgermocks "hotel-indexer/core/ledger/mocks"
	"hotel-indexer/core/mirror"
	"hotel-indexer/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCheckSchema(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&mirror.Hotel{}))
	require.NoError(t, db.Exec("CREATE TABLE rooms (id INTEGER PRIMARY KEY, object_id TEXT)").Error)

	report, err := CheckSchema(db, &mirror.Hotel{}, &mirror.Room{}, &mirror.Review{})
	require.NoError(t, err)
	assert.False(t, report.Matched)

	assert.Equal(t, "ok", report.Tables["hotels"].Status)
	assert.Empty(t, report.Tables["hotels"].MissingColumns)

	rooms := report.Tables["rooms"]
	assert.Equal(t, "error", rooms.Status)
	assert.Contains(t, rooms.MissingColumns, "hotel_id")
	assert.Contains(t, rooms.MissingColumns, "is_booked")
	assert.NotContains(t, rooms.MissingColumns, "object_id")

	assert.Equal(t, "missing", report.Tables["reviews"].Status)

	t.Run("NilDB", func(t *testing.T) {
		_, err := CheckSchema(nil)
		assert.Error(t, err)
	})
}

func TestCheckStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("BucketMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "images").Return(false, nil)

		report, err := CheckStorage(ctx, client, "images")
		require.NoError(t, err)
		assert.False(t, report.Exists)
		assert.False(t, report.Writable)
		client.AssertNumberOfCalls(t, "PutObject", 0)
	})

	t.Run("Writable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "images").Return(true, nil)
		client.On("PutObject", mock.Anything, "images", ProbeObject, mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, nil)
		client.On("RemoveObject", mock.Anything, "images", ProbeObject, mock.Anything).Return(nil)

		report, err := CheckStorage(ctx, client, "images")
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.True(t, report.Writable)
		client.AssertExpectations(t)
	})

	t.Run("ReadOnly", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "images").Return(true, nil)
		client.On("PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("access denied"))

		report, err := CheckStorage(ctx, client, "images")
		require.NoError(t, err)
		assert.True(t, report.Exists)
		assert.False(t, report.Writable)
	})

	t.Run("Unreachable", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "images").Return(false, errors.New("dial tcp: refused"))

		_, err := CheckStorage(ctx, client, "images")
		assert.ErrorContains(t, err, "refused")
	})
}

func TestFixStorage(t *testing.T) {
	client := new(mocks.Client)
	client.On("MakeBucket", mock.Anything, "images", minio.MakeBucketOptions{Region: "us-east-1"}).Return(nil).Once()
	assert.NoError(t, FixStorage(context.Background(), client, "images", "us-east-1", zap.NewNop()))

	client.On("MakeBucket", mock.Anything, "other", mock.Anything).Return(errors.New("denied")).Once()
	assert.Error(t, FixStorage(context.Background(), client, "other", "", zap.NewNop()))
}

func TestCheckLedger(t *testing.T) {
	filter := ledger.EventFilter{Package: "0xpkg", Module: "hotel_booking"}
	latest := ledger.EventID{TxDigest: "d9", EventSeq: "1"}

	client := new(ledgermocks.Client)
	client.On("QueryEvents", mock.Anything, ledger.QueryEventsRequest{Filter: filter, Limit: 1, Descending: true}).
		Return(&ledger.EventPage{Data: []ledger.Event{{ID: latest}}}, nil).Once()

	report := CheckLedger(context.Background(), client, filter)
	assert.True(t, report.Reachable)
	assert.Equal(t, &latest, report.Latest)

	client.On("QueryEvents", mock.Anything, mock.Anything).Return(nil, ledger.ErrUnavailable).Once()
	report = CheckLedger(context.Background(), client, filter)
	assert.False(t, report.Reachable)
	assert.NotEmpty(t, report.Error)
}
