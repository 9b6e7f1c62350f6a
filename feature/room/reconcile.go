package room

import (
	"context"

	"hotel-indexer/core/events"
	"hotel-indexer/core/ledger"
	"hotel-indexer/core/mirror"
	"hotel-indexer/core/reconcile"
	"hotel-indexer/core/utils"

	"go.uber.org/zap"
)

// Reconciler applies room events to the mirror.
type Reconciler struct {
	ledger ledger.Client
	store  mirror.Store
	logger *zap.Logger
}

// NewReconciler creates the room handler family.
func NewReconciler(client ledger.Client, store mirror.Store, logger *zap.Logger) *Reconciler {
	return &Reconciler{ledger: client, store: store, logger: logger}
}

// FromObject maps a ledger Room object to its mirror record. The on-chain
// image_blob_id holds the public image url.
func FromObject(obj ledger.Object) *mirror.Room {
	return &mirror.Room{
		ObjectID:    obj.ObjectID,
		HotelID:     utils.ToString(utils.Unwrap(obj.Field("hotel_id"))),
		PricePerDay: utils.ToInt64(obj.Field("price_per_day")),
		IsBooked:    utils.ToBool(obj.Field("is_booked")),
		ImageURL:    utils.ToString(obj.Field("image_blob_id")),
	}
}

// HandleRoomListed upserts the listed room from its current state.
func (r *Reconciler) HandleRoomListed(ctx context.Context, ev events.RoomListed, res *reconcile.Result) error {
	objs, err := reconcile.FetchObjects(ctx, r.ledger, ev.RoomID)
	if err != nil {
		return err
	}

	obj, ok := objs.Get(ev.RoomID)
	if !ok {
		res.Skipped(ev.RoomID)
		return nil
	}

	room := FromObject(obj)
	if room.HotelID == "" {
		room.HotelID = ev.HotelID
	}
	if err := r.store.UpsertRoom(ctx, room); err != nil {
		return err
	}
	res.Applied(reconcile.EntityRoom, room.ObjectID)

	r.logger.Debug("Upserted room", zap.String("object_id", room.ObjectID), zap.String("hotel_id", room.HotelID))
	return nil
}
