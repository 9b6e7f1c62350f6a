package reservation

import (
	"context"

	"hotel-indexer/core/events"
	"hotel-indexer/core/ledger"
	"hotel-indexer/core/mirror"
	"hotel-indexer/core/reconcile"
	"hotel-indexer/core/utils"
	"hotel-indexer/feature/room"

	"go.uber.org/zap"
)

// Reconciler applies booking lifecycle events to the mirror.
type Reconciler struct {
	ledger ledger.Client
	store  mirror.Store
	logger *zap.Logger
}

// NewReconciler creates the reservation handler family.
func NewReconciler(client ledger.Client, store mirror.Store, logger *zap.Logger) *Reconciler {
	return &Reconciler{ledger: client, store: store, logger: logger}
}

// FromObject maps a ledger Reservation object to its mirror record.
// Dates are stored on-chain as unix seconds.
func FromObject(obj ledger.Object) *mirror.Reservation {
	guest := obj.Field("guest_address")
	if guest == nil {
		guest = obj.Field("guest")
	}
	return &mirror.Reservation{
		ObjectID:     obj.ObjectID,
		RoomID:       utils.ToString(utils.Unwrap(obj.Field("room_id"))),
		HotelID:      utils.ToString(utils.Unwrap(obj.Field("hotel_id"))),
		GuestAddress: utils.ToString(guest),
		StartDate:    utils.ToUnixTime(obj.Field("start_date")),
		EndDate:      utils.ToUnixTime(obj.Field("end_date")),
		TotalCost:    utils.ToInt64(obj.Field("total_cost")),
		IsActive:     utils.ToBool(obj.Field("is_active")),
	}
}

// booking describes the reservation and room a lifecycle event touches.
type booking struct {
	reservationID string
	roomID        string
	hotelID       string
	// active, when set, overrides the fetched is_active and is_booked flags.
	active *bool
}

// HandleRoomBooked records the reservation as active and the room as booked.
func (r *Reconciler) HandleRoomBooked(ctx context.Context, ev events.RoomBooked, res *reconcile.Result) error {
	active := true
	return r.apply(ctx, booking{
		reservationID: ev.ReservationID,
		roomID:        ev.RoomID,
		hotelID:       ev.HotelID,
		active:        &active,
	}, res)
}

// HandleReservationCancelled records the reservation as inactive and the
// room as free.
func (r *Reconciler) HandleReservationCancelled(ctx context.Context, ev events.ReservationCancelled, res *reconcile.Result) error {
	active := false
	return r.apply(ctx, booking{
		reservationID: ev.ReservationID,
		roomID:        ev.RoomID,
		hotelID:       ev.HotelID,
		active:        &active,
	}, res)
}

// HandleReservationRescheduled refreshes the reservation dates and cost.
// The room is not touched.
func (r *Reconciler) HandleReservationRescheduled(ctx context.Context, ev events.ReservationRescheduled, res *reconcile.Result) error {
	return r.apply(ctx, booking{
		reservationID: ev.ReservationID,
		hotelID:       ev.HotelID,
	}, res)
}

// apply performs the reservation upsert and, for flag-carrying events, the
// room upsert. The two writes are independent: a missing object skips
// only its own write.
func (r *Reconciler) apply(ctx context.Context, b booking, res *reconcile.Result) error {
	objs, err := reconcile.FetchObjects(ctx, r.ledger, b.reservationID, b.roomID)
	if err != nil {
		return err
	}

	var resv *mirror.Reservation
	if obj, ok := objs.Get(b.reservationID); ok {
		resv = FromObject(obj)
		if resv.RoomID == "" {
			resv.RoomID = b.roomID
		}
		if resv.HotelID == "" {
			resv.HotelID = b.hotelID
		}
		if b.active != nil {
			resv.IsActive = *b.active
		}
		if err := r.store.UpsertReservation(ctx, resv); err != nil {
			return err
		}
		res.Applied(reconcile.EntityReservation, resv.ObjectID)
		r.logger.Debug("Upserted reservation",
			zap.String("object_id", resv.ObjectID),
			zap.Bool("is_active", resv.IsActive))
	} else {
		res.Skipped(b.reservationID)
	}

	if b.active == nil {
		return nil
	}

	roomID := b.roomID
	if roomID == "" && resv != nil {
		roomID = resv.RoomID
		more, err := reconcile.FetchObjects(ctx, r.ledger, roomID)
		if err != nil {
			return err
		}
		objs = more
	}
	if roomID == "" {
		return nil
	}

	obj, ok := objs.Get(roomID)
	if !ok {
		res.Skipped(roomID)
		return nil
	}
	rm := room.FromObject(obj)
	rm.IsBooked = *b.active
	if err := r.store.UpsertRoom(ctx, rm); err != nil {
		return err
	}
	res.Applied(reconcile.EntityRoom, rm.ObjectID)
	r.logger.Debug("Upserted room booking status",
		zap.String("object_id", rm.ObjectID),
		zap.Bool("is_booked", rm.IsBooked))
	return nil
}
