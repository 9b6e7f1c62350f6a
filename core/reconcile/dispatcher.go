package reconcile

import (
	"context"
	"errors"
	"fmt"

	"hotel-indexer/core/events"

	"go.uber.org/zap"
)

// Dispatcher routes decoded events to their handler family.
type Dispatcher struct {
	handlers Handlers
	logger   *zap.Logger
}

// NewDispatcher requires a handler for every family.
func NewDispatcher(h Handlers, logger *zap.Logger) (*Dispatcher, error) {
	switch {
	case h.Hotels == nil:
		return nil, errors.New("dispatcher: hotel handler is required")
	case h.Rooms == nil:
		return nil, errors.New("dispatcher: room handler is required")
	case h.Reservations == nil:
		return nil, errors.New("dispatcher: reservation handler is required")
	case h.Reviews == nil:
		return nil, errors.New("dispatcher: review handler is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{handlers: h, logger: logger}, nil
}

// Dispatch hands ev to exactly one handler. Unknown events return an
// ignored result and no error.
func (d *Dispatcher) Dispatch(ctx context.Context, ev events.Event) (*Result, error) {
	meta := ev.Envelope()
	res := &Result{Kind: ev.Kind(), EventID: meta.ID}

	var err error
	switch e := ev.(type) {
	case events.HotelCreated:
		err = d.handlers.Hotels.HandleHotelCreated(ctx, e, res)
	case events.RoomListed:
		err = d.handlers.Rooms.HandleRoomListed(ctx, e, res)
	case events.RoomBooked:
		err = d.handlers.Reservations.HandleRoomBooked(ctx, e, res)
	case events.ReservationCancelled:
		err = d.handlers.Reservations.HandleReservationCancelled(ctx, e, res)
	case events.ReservationRescheduled:
		err = d.handlers.Reservations.HandleReservationRescheduled(ctx, e, res)
	case events.ReviewPosted:
		err = d.handlers.Reviews.HandleReviewPosted(ctx, e, res)
	case events.Unknown:
		d.logger.Debug("Ignoring unknown event",
			zap.String("type", meta.Type),
			zap.String("event", meta.ID.Key()))
		res.Ignored = true
		return res, nil
	default:
		return nil, fmt.Errorf("dispatch %s: unhandled event variant %T", meta.ID.Key(), ev)
	}

	if err != nil {
		return nil, fmt.Errorf("handle %s %s: %w", ev.Kind(), meta.ID.Key(), err)
	}
	return res, nil
}
