package reconcile

import (
	"context"
	"errors"
	"testing"

	"hotel-indexer/core/events"
	"hotel-indexer/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockHandlers struct {
	mock.Mock
}

func (m *mockHandlers) HandleHotelCreated(ctx context.Context, ev events.HotelCreated, res *Result) error {
	return m.Called(ctx, ev, res).Error(0)
}

func (m *mockHandlers) HandleRoomListed(ctx context.Context, ev events.RoomListed, res *Result) error {
	return m.Called(ctx, ev, res).Error(0)
}

func (m *mockHandlers) HandleRoomBooked(ctx context.Context, ev events.RoomBooked, res *Result) error {
	return m.Called(ctx, ev, res).Error(0)
}

func (m *mockHandlers) HandleReservationCancelled(ctx context.Context, ev events.ReservationCancelled, res *Result) error {
	return m.Called(ctx, ev, res).Error(0)
}

func (m *mockHandlers) HandleReservationRescheduled(ctx context.Context, ev events.ReservationRescheduled, res *Result) error {
	return m.Called(ctx, ev, res).Error(0)
}

func (m *mockHandlers) HandleReviewPosted(ctx context.Context, ev events.ReviewPosted, res *Result) error {
	return m.Called(ctx, ev, res).Error(0)
}

func newTestDispatcher(t *testing.T, logger *zap.Logger) (*Dispatcher, *mockHandlers) {
	t.Helper()
	h := &mockHandlers{}
	d, err := NewDispatcher(Handlers{Hotels: h, Rooms: h, Reservations: h, Reviews: h}, logger)
	require.NoError(t, err)
	return d, h
}

func meta(seq string) events.Meta {
	return events.Meta{ID: ledger.EventID{TxDigest: "D", EventSeq: seq}}
}

func TestNewDispatcher_RequiresEveryFamily(t *testing.T) {
	h := &mockHandlers{}
	_, err := NewDispatcher(Handlers{Hotels: h, Rooms: h, Reservations: h}, nil)
	assert.ErrorContains(t, err, "review handler")

	_, err = NewDispatcher(Handlers{}, nil)
	assert.ErrorContains(t, err, "hotel handler")
}

func TestDispatch_RoutesToExactlyOneHandler(t *testing.T) {
	tests := []struct {
		name   string
		event  events.Event
		method string
	}{
		{"HotelCreated", events.HotelCreated{Meta: meta("0"), HotelID: "0xh"}, "HandleHotelCreated"},
		{"RoomListed", events.RoomListed{Meta: meta("1"), RoomID: "0xr"}, "HandleRoomListed"},
		{"RoomBooked", events.RoomBooked{Meta: meta("2"), ReservationID: "0xres"}, "HandleRoomBooked"},
		{"ReservationCancelled", events.ReservationCancelled{Meta: meta("3"), ReservationID: "0xres"}, "HandleReservationCancelled"},
		{"ReservationRescheduled", events.ReservationRescheduled{Meta: meta("4"), ReservationID: "0xres"}, "HandleReservationRescheduled"},
		{"ReviewPosted", events.ReviewPosted{Meta: meta("5"), ReviewID: "0xv"}, "HandleReviewPosted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, h := newTestDispatcher(t, nil)
			h.On(tt.method, mock.Anything, tt.event, mock.AnythingOfType("*reconcile.Result")).
				Run(func(args mock.Arguments) {
					args.Get(2).(*Result).Applied(EntityHotel, "0xobj")
				}).
				Return(nil).Once()

			res, err := d.Dispatch(context.Background(), tt.event)
			require.NoError(t, err)
			assert.Equal(t, tt.event.Kind(), res.Kind)
			assert.Equal(t, tt.event.Envelope().ID, res.EventID)
			assert.False(t, res.Ignored)
			assert.Equal(t, []Change{{Entity: EntityHotel, ObjectID: "0xobj"}}, res.Changes)

			h.AssertExpectations(t)
			assert.Len(t, h.Calls, 1)
		})
	}
}

func TestDispatch_UnknownIsIgnored(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	d, h := newTestDispatcher(t, zap.New(core))

	ev := events.Unknown{Meta: events.Meta{ID: ledger.EventID{TxDigest: "D", EventSeq: "9"}, Type: "0x1::hotel_booking::RoomUpgraded"}}
	res, err := d.Dispatch(context.Background(), ev)
	require.NoError(t, err)
	assert.True(t, res.Ignored)
	assert.Empty(t, res.Changes)
	assert.Empty(t, h.Calls)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zap.DebugLevel, entry.Level)
	assert.Equal(t, "0x1::hotel_booking::RoomUpgraded", entry.ContextMap()["type"])
}

func TestDispatch_HandlerErrorIsWrapped(t *testing.T) {
	d, h := newTestDispatcher(t, nil)
	cause := errors.New("storage down")
	ev := events.RoomBooked{Meta: meta("7"), ReservationID: "0xres"}
	h.On("HandleRoomBooked", mock.Anything, ev, mock.Anything).Return(cause)

	res, err := d.Dispatch(context.Background(), ev)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "RoomBooked D::7")
}
