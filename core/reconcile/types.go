package reconcile

import (
	"context"

	"hotel-indexer/core/events"
	"hotel-indexer/core/ledger"
)

// Entity names a mirror collection.
type Entity string

const (
	EntityHotel       Entity = "hotel"
	EntityRoom        Entity = "room"
	EntityReservation Entity = "reservation"
	EntityReview      Entity = "review"
)

// Change records one upsert performed while handling an event.
type Change struct {
	// Entity is the mirror collection written to.
	Entity Entity `json:"entity"`

	// ObjectID is the on-chain id of the upserted record.
	ObjectID string `json:"objectId"`
}

// Result is the outcome of dispatching a single event.
type Result struct {
	// Kind is the decoded event kind.
	Kind events.Kind `json:"kind"`

	// EventID is the ledger position of the event.
	EventID ledger.EventID `json:"eventId"`

	// Changes lists the upserts in the order they were applied.
	Changes []Change `json:"changes"`

	// Missing lists referenced object ids the ledger could not resolve.
	// Their writes were skipped.
	Missing []string `json:"missing,omitempty"`

	// Ignored is set for events outside the known set.
	Ignored bool `json:"ignored,omitempty"`
}

// Applied appends an upsert to the result.
func (r *Result) Applied(entity Entity, objectID string) {
	r.Changes = append(r.Changes, Change{Entity: entity, ObjectID: objectID})
}

// Skipped records an unresolvable object id.
func (r *Result) Skipped(objectID string) {
	r.Missing = append(r.Missing, objectID)
}

// HotelHandler reconciles hotel events.
type HotelHandler interface {
	HandleHotelCreated(ctx context.Context, ev events.HotelCreated, res *Result) error
}

// RoomHandler reconciles room events.
type RoomHandler interface {
	HandleRoomListed(ctx context.Context, ev events.RoomListed, res *Result) error
}

// ReservationHandler reconciles booking lifecycle events. Booking and
// cancellation also flip the booked flag of the reserved room.
type ReservationHandler interface {
	HandleRoomBooked(ctx context.Context, ev events.RoomBooked, res *Result) error
	HandleReservationCancelled(ctx context.Context, ev events.ReservationCancelled, res *Result) error
	HandleReservationRescheduled(ctx context.Context, ev events.ReservationRescheduled, res *Result) error
}

// ReviewHandler reconciles review events.
type ReviewHandler interface {
	HandleReviewPosted(ctx context.Context, ev events.ReviewPosted, res *Result) error
}

// Handlers bundles one handler per entity family.
type Handlers struct {
	Hotels       HotelHandler
	Rooms        RoomHandler
	Reservations ReservationHandler
	Reviews      ReviewHandler
}
