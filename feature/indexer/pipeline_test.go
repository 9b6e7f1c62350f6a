package indexer_test

import (
	"context"
	"encoding/json"
	"testing"

	"hotel-indexer/core/cursor"
	coreindexer "hotel-indexer/core/indexer"
	"hotel-indexer/core/ledger"
	"hotel-indexer/core/ledger/mocks"
	"hotel-indexer/core/mirror"
	"hotel-indexer/core/mirror/mirrortest"
	"hotel-indexer/core/reconcile"
	"hotel-indexer/feature/hotel"
	"hotel-indexer/feature/indexer"
	"hotel-indexer/feature/reservation"
	"hotel-indexer/feature/review"
	"hotel-indexer/feature/room"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	pkg    = "0xpkg"
	module = "hotel_booking"
)

func event(digest, name, payload string) ledger.Event {
	return ledger.Event{
		ID:         ledger.EventID{TxDigest: digest, EventSeq: "0"},
		Type:       pkg + "::" + module + "::" + name,
		ParsedJSON: json.RawMessage(payload),
	}
}

var (
	hotelCreated = event("d1", "HotelCreated", `{"hotel_id":"0xh","owner":"0xo","name":"Seaside"}`)
	roomListed   = event("d2", "RoomListed", `{"room_id":"0xr","hotel_id":"0xh","price_per_day":"120"}`)
	roomBooked   = event("d3", "RoomBooked", `{"reservation_id":"0xres","room_id":"0xr","hotel_id":"0xh","guest":"0xg"}`)
	cancelled    = event("d4", "ReservationCancelled", `{"reservation_id":"0xres","room_id":"0xr","hotel_id":"0xh","guest":"0xg"}`)
	reviewPosted = event("d5", "ReviewPosted", `{"review_id":"0xv","hotel_id":"0xh","reservation_id":"0xres","guest":"0xg","rating":5}`)
	upgraded     = event("d6", "ContractUpgraded", `{}`)
)

// chainState is the current object state served by the fake fullnode.
var chainState = []ledger.Object{
	{ObjectID: "0xh", Fields: map[string]any{"name": "Seaside", "physical_address": "1 Beach Rd", "owner": "0xo", "treasury": "0"}},
	{ObjectID: "0xr", Fields: map[string]any{"hotel_id": "0xh", "price_per_day": "120", "is_booked": false, "image_blob_id": "https://cdn/r.png"}},
	{ObjectID: "0xres", Fields: map[string]any{"room_id": "0xr", "hotel_id": "0xh", "guest_address": "0xg", "start_date": "1700000000", "end_date": "1700086400", "total_cost": "120", "is_active": false}},
	{ObjectID: "0xv", Fields: map[string]any{"hotel_id": "0xh", "reservation_id": "0xres", "guest_address": "0xg", "rating": "5", "comment": "Lovely"}},
}

type pipeline struct {
	runner *coreindexer.Runner
	ledger *mocks.Client
	store  *mirror.GormStore
	db     *gorm.DB
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	store, db := mirrortest.NewGormStore(t)
	cursors := cursor.NewGormStore(db)
	require.NoError(t, cursors.Migrate(context.Background()))

	client := &mocks.Client{}
	client.On("GetObjects", mock.Anything, mock.Anything).Return(func(_ context.Context, ids []string) []ledger.Object {
		var out []ledger.Object
		for _, id := range ids {
			for _, o := range chainState {
				if o.ObjectID == id {
					out = append(out, o)
				}
			}
		}
		return out
	}, nil)

	return &pipeline{
		runner: newRunner(t, client, store, cursors),
		ledger: client,
		store:  store,
		db:     db,
	}
}

func newRunner(t *testing.T, client ledger.Client, store mirror.Store, cursors cursor.Store) *coreindexer.Runner {
	t.Helper()
	logger := zap.NewNop()
	dispatcher, err := reconcile.NewDispatcher(reconcile.Handlers{
		Hotels:       hotel.NewReconciler(client, store, logger),
		Rooms:        room.NewReconciler(client, store, logger),
		Reservations: reservation.NewReconciler(client, store, logger),
		Reviews:      review.NewReconciler(client, store, logger),
	}, logger)
	require.NoError(t, err)

	runner, err := coreindexer.NewRunner(coreindexer.Options{
		Config:     coreindexer.Config{StreamKey: "sui_events", PageLimit: 50, CallTimeoutSeconds: 5, DedupCapacity: 100},
		Filter:     ledger.EventFilter{Package: pkg, Module: module},
		Ledger:     client,
		Cursors:    cursors,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	require.NoError(t, err)
	return runner
}

func after(pos *ledger.EventID) any {
	return mock.MatchedBy(func(req ledger.QueryEventsRequest) bool {
		if pos == nil {
			return req.Cursor == nil
		}
		return req.Cursor != nil && *req.Cursor == *pos
	})
}

func page(events ...ledger.Event) *ledger.EventPage {
	last := events[len(events)-1].ID
	return &ledger.EventPage{Data: events, NextCursor: &last}
}

func (p *pipeline) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, p.db.Model(model).Count(&n).Error)
	return n
}

func TestPipeline_TriggerAppliesPagesInOrder(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	app := newApp(t, p.runner, secret)

	p.ledger.On("QueryEvents", mock.Anything, after(nil)).
		Return(page(hotelCreated, roomListed, roomBooked), nil).Once()

	status, body := call(t, app, "POST", "/api/indexer/run", secret)
	require.Equal(t, 200, status)
	assert.Equal(t, "Successfully processed 3 events.", body["message"])

	h, err := p.store.GetHotel(ctx, "0xh")
	require.NoError(t, err)
	assert.Equal(t, "Seaside", h.Name)
	assert.Equal(t, "1 Beach Rd", h.PhysicalAddress)

	// The booking flags follow the event even though the object state lags.
	r, err := p.store.GetRoom(ctx, "0xr")
	require.NoError(t, err)
	assert.True(t, r.IsBooked)
	assert.Equal(t, "0xh", r.HotelID)

	resv, err := p.store.GetReservation(ctx, "0xres")
	require.NoError(t, err)
	assert.True(t, resv.IsActive)

	// The next page overlaps the last applied event; the dedup guard skips it.
	p.ledger.On("QueryEvents", mock.Anything, after(&roomBooked.ID)).
		Return(page(roomBooked, cancelled, reviewPosted, upgraded), nil).Once()

	res, err := p.runner.RunCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Duplicates)
	assert.Equal(t, 2, res.Applied)
	assert.Equal(t, 1, res.Ignored)
	assert.Equal(t, upgraded.ID, *res.Cursor)

	r, err = p.store.GetRoom(ctx, "0xr")
	require.NoError(t, err)
	assert.False(t, r.IsBooked)

	resv, err = p.store.GetReservation(ctx, "0xres")
	require.NoError(t, err)
	assert.False(t, resv.IsActive)

	reviews, err := p.store.ListReviewsByHotel(ctx, "0xh")
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)

	p.ledger.On("QueryEvents", mock.Anything, after(&upgraded.ID)).
		Return(&ledger.EventPage{Data: []ledger.Event{}}, nil).Once()

	status, body = call(t, app, "GET", "/api/indexer/run", secret)
	require.Equal(t, 200, status)
	assert.Equal(t, "No new events.", body["message"])

	status, body = call(t, app, "GET", "/api/indexer/status", "")
	require.Equal(t, 200, status)
	assert.Equal(t, "d6", body["cursor"].(map[string]any)["txDigest"])
	p.ledger.AssertExpectations(t)
}

func TestPipeline_ReplayIsIdempotent(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	all := page(hotelCreated, roomListed, roomBooked, cancelled, reviewPosted)

	p.ledger.On("QueryEvents", mock.Anything, after(nil)).Return(all, nil).Once()
	_, err := p.runner.RunCycle(ctx)
	require.NoError(t, err)

	snapshot := map[string]int64{
		"hotels":       p.count(t, &mirror.Hotel{}),
		"rooms":        p.count(t, &mirror.Room{}),
		"reservations": p.count(t, &mirror.Reservation{}),
		"reviews":      p.count(t, &mirror.Review{}),
	}
	assert.Equal(t, map[string]int64{"hotels": 1, "rooms": 1, "reservations": 1, "reviews": 1}, snapshot)

	// A restarted process has an empty dedup guard and a reset cursor, so
	// it replays the whole history against the existing mirror.
	cursors := cursor.NewGormStore(p.db)
	require.NoError(t, cursors.Reset(ctx, "sui_events"))
	replay := newRunner(t, p.ledger, p.store, cursors)
	p.ledger.On("QueryEvents", mock.Anything, after(nil)).Return(all, nil).Once()

	res, err := replay.RunCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Duplicates)
	assert.Equal(t, 5, res.Applied)

	assert.Equal(t, snapshot["hotels"], p.count(t, &mirror.Hotel{}))
	assert.Equal(t, snapshot["rooms"], p.count(t, &mirror.Room{}))
	assert.Equal(t, snapshot["reservations"], p.count(t, &mirror.Reservation{}))
	assert.Equal(t, snapshot["reviews"], p.count(t, &mirror.Review{}))

	r, err := p.store.GetRoom(ctx, "0xr")
	require.NoError(t, err)
	assert.False(t, r.IsBooked, "the last event of the page decides the flag")
}

func TestPipeline_MissingObjectStillAdvances(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()
	ghost := event("d9", "RoomListed", `{"room_id":"0xghost","hotel_id":"0xh"}`)

	p.ledger.On("QueryEvents", mock.Anything, after(nil)).Return(page(ghost), nil).Once()
	res, err := p.runner.RunCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Missing)
	assert.True(t, res.Advanced)
	assert.Equal(t, int64(0), p.count(t, &mirror.Room{}))
}

var _ indexer.Runner = (*coreindexer.Runner)(nil)
