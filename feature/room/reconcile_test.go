package room_test

import (
	"context"
	"testing"

	"hotel-indexer/core/events"
	"hotel-indexer/core/ledger"
	"hotel-indexer/core/ledger/mocks"
	"hotel-indexer/core/mirror"
	"hotel-indexer/core/mirror/mirrortest"
	"hotel-indexer/core/reconcile"
	"hotel-indexer/feature/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func roomObject(fields map[string]any) ledger.Object {
	base := map[string]any{
		"id":            map[string]any{"id": "0xr"},
		"hotel_id":      map[string]any{"id": "0xh"},
		"price_per_day": "120",
		"is_booked":     false,
		"image_blob_id": "https://cdn/r.png",
	}
	for k, v := range fields {
		base[k] = v
	}
	return ledger.Object{ObjectID: "0xr", Fields: base}
}

func TestFromObject(t *testing.T) {
	r := room.FromObject(roomObject(map[string]any{"is_booked": true}))
	assert.Equal(t, &mirror.Room{
		ObjectID:    "0xr",
		HotelID:     "0xh",
		PricePerDay: 120,
		IsBooked:    true,
		ImageURL:    "https://cdn/r.png",
	}, r)
}

func TestHandleRoomListed(t *testing.T) {
	ctx := context.Background()
	ev := events.RoomListed{RoomID: "0xr", HotelID: "0xh", PricePerDay: 1}

	t.Run("UpsertsFetchedState", func(t *testing.T) {
		store, _ := mirrortest.NewGormStore(t)
		client := &mocks.Client{}
		client.On("GetObjects", mock.Anything, []string{"0xr"}).Return([]ledger.Object{roomObject(nil)}, nil)

		res := &reconcile.Result{}
		require.NoError(t, room.NewReconciler(client, store, zap.NewNop()).HandleRoomListed(ctx, ev, res))
		assert.Equal(t, []reconcile.Change{{Entity: reconcile.EntityRoom, ObjectID: "0xr"}}, res.Changes)

		got, err := store.GetRoom(ctx, "0xr")
		require.NoError(t, err)
		assert.Equal(t, int64(120), got.PricePerDay)
		assert.Equal(t, "0xh", got.HotelID)
	})

	t.Run("HotelFromPayloadWhenObjectLacksIt", func(t *testing.T) {
		store, _ := mirrortest.NewGormStore(t)
		client := &mocks.Client{}
		client.On("GetObjects", mock.Anything, mock.Anything).Return([]ledger.Object{roomObject(map[string]any{"hotel_id": nil})}, nil)

		require.NoError(t, room.NewReconciler(client, store, zap.NewNop()).HandleRoomListed(ctx, ev, &reconcile.Result{}))

		got, err := store.GetRoom(ctx, "0xr")
		require.NoError(t, err)
		assert.Equal(t, "0xh", got.HotelID)
	})

	t.Run("MissingObjectIsSkipped", func(t *testing.T) {
		store, _ := mirrortest.NewGormStore(t)
		client := &mocks.Client{}
		client.On("GetObjects", mock.Anything, mock.Anything).Return([]ledger.Object{}, nil)

		res := &reconcile.Result{}
		require.NoError(t, room.NewReconciler(client, store, zap.NewNop()).HandleRoomListed(ctx, ev, res))
		assert.Equal(t, []string{"0xr"}, res.Missing)
	})
}
