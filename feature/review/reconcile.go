package review

import (
	"context"

	"hotel-indexer/core/events"
	"hotel-indexer/core/ledger"
	"hotel-indexer/core/mirror"
	"hotel-indexer/core/reconcile"
	"hotel-indexer/core/utils"

	"go.uber.org/zap"
)

// Reconciler applies review events to the mirror.
type Reconciler struct {
	ledger ledger.Client
	store  mirror.Store
	logger *zap.Logger
}

// NewReconciler creates the review handler family.
func NewReconciler(client ledger.Client, store mirror.Store, logger *zap.Logger) *Reconciler {
	return &Reconciler{ledger: client, store: store, logger: logger}
}

// FromObject maps a ledger Review object to its mirror record.
func FromObject(obj ledger.Object) *mirror.Review {
	guest := obj.Field("guest_address")
	if guest == nil {
		guest = obj.Field("guest")
	}
	return &mirror.Review{
		ObjectID:      obj.ObjectID,
		HotelID:       utils.ToString(utils.Unwrap(obj.Field("hotel_id"))),
		ReservationID: utils.ToString(utils.Unwrap(obj.Field("reservation_id"))),
		GuestAddress:  utils.ToString(guest),
		Rating:        utils.ToInt(obj.Field("rating")),
		Comment:       utils.ToString(obj.Field("comment")),
	}
}

// HandleReviewPosted upserts the posted review from its current state.
func (r *Reconciler) HandleReviewPosted(ctx context.Context, ev events.ReviewPosted, res *reconcile.Result) error {
	objs, err := reconcile.FetchObjects(ctx, r.ledger, ev.ReviewID)
	if err != nil {
		return err
	}

	obj, ok := objs.Get(ev.ReviewID)
	if !ok {
		res.Skipped(ev.ReviewID)
		return nil
	}

	rv := FromObject(obj)
	if rv.HotelID == "" {
		rv.HotelID = ev.HotelID
	}
	if err := r.store.UpsertReview(ctx, rv); err != nil {
		return err
	}
	res.Applied(reconcile.EntityReview, rv.ObjectID)

	r.logger.Debug("Upserted review", zap.String("object_id", rv.ObjectID), zap.Int("rating", rv.Rating))
	return nil
}
