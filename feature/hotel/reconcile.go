package hotel

import (
	"context"

	"hotel-indexer/core/events"
	"hotel-indexer/core/ledger"
	"hotel-indexer/core/mirror"
	"hotel-indexer/core/reconcile"
	"hotel-indexer/core/utils"

	"go.uber.org/zap"
)

// Reconciler applies hotel events to the mirror.
type Reconciler struct {
	ledger ledger.Client
	store  mirror.Store
	logger *zap.Logger
}

// NewReconciler creates the hotel handler family.
func NewReconciler(client ledger.Client, store mirror.Store, logger *zap.Logger) *Reconciler {
	return &Reconciler{ledger: client, store: store, logger: logger}
}

// FromObject maps a ledger Hotel object to its mirror record.
func FromObject(obj ledger.Object) *mirror.Hotel {
	return &mirror.Hotel{
		ObjectID:        obj.ObjectID,
		Name:            utils.ToString(obj.Field("name")),
		PhysicalAddress: utils.ToString(obj.Field("physical_address")),
		Owner:           utils.ToString(utils.Unwrap(obj.Field("owner"))),
		Treasury:        utils.ToInt64(utils.Unwrap(obj.Field("treasury"))),
	}
}

// HandleHotelCreated upserts the created hotel from its current state.
func (r *Reconciler) HandleHotelCreated(ctx context.Context, ev events.HotelCreated, res *reconcile.Result) error {
	objs, err := reconcile.FetchObjects(ctx, r.ledger, ev.HotelID)
	if err != nil {
		return err
	}

	obj, ok := objs.Get(ev.HotelID)
	if !ok {
		res.Skipped(ev.HotelID)
		return nil
	}

	h := FromObject(obj)
	if err := r.store.UpsertHotel(ctx, h); err != nil {
		return err
	}
	res.Applied(reconcile.EntityHotel, h.ObjectID)

	r.logger.Debug("Upserted hotel", zap.String("object_id", h.ObjectID), zap.String("name", h.Name))
	return nil
}
