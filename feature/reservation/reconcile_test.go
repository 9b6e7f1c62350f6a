package reservation_test

import (
	"context"
	"testing"
	"time"

	"hotel-indexer/core/events"
	"hotel-indexer/core/ledger"
	"hotel-indexer/core/ledger/mocks"
	"hotel-indexer/core/mirror"
	"hotel-indexer/core/mirror/mirrortest"
	"hotel-indexer/core/reconcile"
	"hotel-indexer/feature/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func reservationObject(active bool) ledger.Object {
	return ledger.Object{
		ObjectID: "0xres",
		Fields: map[string]any{
			"id":            map[string]any{"id": "0xres"},
			"room_id":       map[string]any{"id": "0xr"},
			"hotel_id":      map[string]any{"id": "0xh"},
			"guest_address": "0xg",
			"start_date":    "1700000000",
			"end_date":      "1700172800",
			"total_cost":    "240",
			"is_active":     active,
		},
	}
}

func roomObject(booked bool) ledger.Object {
	return ledger.Object{
		ObjectID: "0xr",
		Fields: map[string]any{
			"hotel_id":      "0xh",
			"price_per_day": "120",
			"is_booked":     booked,
		},
	}
}

// ledgerWith serves whichever of the objects are requested.
func ledgerWith(objs ...ledger.Object) *mocks.Client {
	client := &mocks.Client{}
	client.On("GetObjects", mock.Anything, mock.Anything).Return(func(_ context.Context, ids []string) []ledger.Object {
		var out []ledger.Object
		for _, id := range ids {
			for _, o := range objs {
				if o.ObjectID == id {
					out = append(out, o)
				}
			}
		}
		return out
	}, nil)
	return client
}

func TestFromObject(t *testing.T) {
	r := reservation.FromObject(reservationObject(true))
	assert.Equal(t, "0xr", r.RoomID)
	assert.Equal(t, "0xh", r.HotelID)
	assert.Equal(t, "0xg", r.GuestAddress)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), r.StartDate)
	assert.Equal(t, time.Unix(1700172800, 0).UTC(), r.EndDate)
	assert.Equal(t, int64(240), r.TotalCost)
	assert.True(t, r.IsActive)

	t.Run("GuestFieldFallback", func(t *testing.T) {
		obj := reservationObject(true)
		delete(obj.Fields, "guest_address")
		obj.Fields["guest"] = "0xg2"
		assert.Equal(t, "0xg2", reservation.FromObject(obj).GuestAddress)
	})
}

func TestHandleRoomBooked(t *testing.T) {
	ctx := context.Background()
	ev := events.RoomBooked{ReservationID: "0xres", RoomID: "0xr", HotelID: "0xh"}

	t.Run("WritesReservationAndRoom", func(t *testing.T) {
		store, _ := mirrortest.NewGormStore(t)
		// The fullnode may still report the room as free.
		client := ledgerWith(reservationObject(true), roomObject(false))

		res := &reconcile.Result{}
		require.NoError(t, reservation.NewReconciler(client, store, zap.NewNop()).HandleRoomBooked(ctx, ev, res))
		assert.Equal(t, []reconcile.Change{
			{Entity: reconcile.EntityReservation, ObjectID: "0xres"},
			{Entity: reconcile.EntityRoom, ObjectID: "0xr"},
		}, res.Changes)

		resv, err := store.GetReservation(ctx, "0xres")
		require.NoError(t, err)
		assert.True(t, resv.IsActive)

		rm, err := store.GetRoom(ctx, "0xr")
		require.NoError(t, err)
		assert.True(t, rm.IsBooked)
		assert.Equal(t, int64(120), rm.PricePerDay)
	})

	t.Run("OneFetchForBothObjects", func(t *testing.T) {
		store, _ := mirrortest.NewGormStore(t)
		client := ledgerWith(reservationObject(true), roomObject(false))

		require.NoError(t, reservation.NewReconciler(client, store, zap.NewNop()).HandleRoomBooked(ctx, ev, &reconcile.Result{}))
		client.AssertNumberOfCalls(t, "GetObjects", 1)
		client.AssertCalled(t, "GetObjects", mock.Anything, []string{"0xres", "0xr"})
	})

	t.Run("RoomFromReservationWhenPayloadLacksIt", func(t *testing.T) {
		store, _ := mirrortest.NewGormStore(t)
		client := ledgerWith(reservationObject(true), roomObject(false))

		bare := events.RoomBooked{ReservationID: "0xres"}
		res := &reconcile.Result{}
		require.NoError(t, reservation.NewReconciler(client, store, zap.NewNop()).HandleRoomBooked(ctx, bare, res))
		assert.Len(t, res.Changes, 2)

		rm, err := store.GetRoom(ctx, "0xr")
		require.NoError(t, err)
		assert.True(t, rm.IsBooked)
	})

	t.Run("MissingReservationStillFlipsRoom", func(t *testing.T) {
		store, _ := mirrortest.NewGormStore(t)
		client := ledgerWith(roomObject(false))

		res := &reconcile.Result{}
		require.NoError(t, reservation.NewReconciler(client, store, zap.NewNop()).HandleRoomBooked(ctx, ev, res))
		assert.Equal(t, []string{"0xres"}, res.Missing)
		assert.Equal(t, []reconcile.Change{{Entity: reconcile.EntityRoom, ObjectID: "0xr"}}, res.Changes)
	})

	t.Run("MissingRoomKeepsReservation", func(t *testing.T) {
		store, _ := mirrortest.NewGormStore(t)
		client := ledgerWith(reservationObject(true))

		res := &reconcile.Result{}
		require.NoError(t, reservation.NewReconciler(client, store, zap.NewNop()).HandleRoomBooked(ctx, ev, res))
		assert.Equal(t, []string{"0xr"}, res.Missing)

		_, err := store.GetReservation(ctx, "0xres")
		assert.NoError(t, err)
		_, err = store.GetRoom(ctx, "0xr")
		assert.ErrorIs(t, err, mirror.ErrNotFound)
	})
}

func TestBookingOrder(t *testing.T) {
	ctx := context.Background()
	booked := events.RoomBooked{ReservationID: "0xres", RoomID: "0xr"}
	cancelled := events.ReservationCancelled{ReservationID: "0xres", RoomID: "0xr"}

	// Both events are replayed after the cancellation landed on chain, so
	// the fetched objects already show the final state.
	newReconciler := func(t *testing.T) (*reservation.Reconciler, *mirror.GormStore) {
		store, _ := mirrortest.NewGormStore(t)
		client := ledgerWith(reservationObject(false), roomObject(false))
		return reservation.NewReconciler(client, store, zap.NewNop()), store
	}

	t.Run("BookedThenCancelled", func(t *testing.T) {
		r, store := newReconciler(t)
		require.NoError(t, r.HandleRoomBooked(ctx, booked, &reconcile.Result{}))
		require.NoError(t, r.HandleReservationCancelled(ctx, cancelled, &reconcile.Result{}))

		rm, err := store.GetRoom(ctx, "0xr")
		require.NoError(t, err)
		assert.False(t, rm.IsBooked)
		resv, err := store.GetReservation(ctx, "0xres")
		require.NoError(t, err)
		assert.False(t, resv.IsActive)
	})

	t.Run("CancelledThenBooked", func(t *testing.T) {
		r, store := newReconciler(t)
		require.NoError(t, r.HandleReservationCancelled(ctx, cancelled, &reconcile.Result{}))
		require.NoError(t, r.HandleRoomBooked(ctx, booked, &reconcile.Result{}))

		rm, err := store.GetRoom(ctx, "0xr")
		require.NoError(t, err)
		assert.True(t, rm.IsBooked, "the last delivered event wins")
	})

	t.Run("ReplayIsIdempotent", func(t *testing.T) {
		r, store := newReconciler(t)
		for i := 0; i < 2; i++ {
			require.NoError(t, r.HandleRoomBooked(ctx, booked, &reconcile.Result{}))
			require.NoError(t, r.HandleReservationCancelled(ctx, cancelled, &reconcile.Result{}))
		}

		rm, err := store.GetRoom(ctx, "0xr")
		require.NoError(t, err)
		assert.False(t, rm.IsBooked)
	})
}

func TestHandleReservationRescheduled(t *testing.T) {
	ctx := context.Background()
	store, _ := mirrortest.NewGormStore(t)
	require.NoError(t, store.UpsertRoom(ctx, &mirror.Room{ObjectID: "0xr", IsBooked: true}))

	obj := reservationObject(true)
	obj.Fields["end_date"] = "1700259200"
	client := ledgerWith(obj, roomObject(false))

	res := &reconcile.Result{}
	err := reservation.NewReconciler(client, store, zap.NewNop()).
		HandleReservationRescheduled(ctx, events.ReservationRescheduled{ReservationID: "0xres", RoomID: "0xr"}, res)
	require.NoError(t, err)
	assert.Equal(t, []reconcile.Change{{Entity: reconcile.EntityReservation, ObjectID: "0xres"}}, res.Changes)

	resv, err := store.GetReservation(ctx, "0xres")
	require.NoError(t, err)
	assert.Equal(t, time.Unix(1700259200, 0).UTC(), resv.EndDate.UTC())

	rm, err := store.GetRoom(ctx, "0xr")
	require.NoError(t, err)
	assert.True(t, rm.IsBooked, "rescheduling leaves the room untouched")
}
