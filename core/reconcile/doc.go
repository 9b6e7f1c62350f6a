// Package reconcile turns decoded ledger events into mirror writes.
//
// # Dispatch
//
// Dispatcher routes each events.Event to exactly one handler family with
// an exhaustive type switch. It performs no I/O itself; handlers fetch
// the referenced objects from the ledger and upsert them into the mirror.
// Unknown events produce an ignored Result and no error so that new
// on-chain event types never stall the sync loop.
//
// # Handlers
//
// Handlers implement one interface per entity family (HotelHandler,
// RoomHandler, ReservationHandler, ReviewHandler). They share three rules:
//
//  1. Writes are upserts keyed by object id, so replays converge.
//  2. Field values come from the object state returned by the ledger at
//     processing time, never from the event payload.
//  3. An id the ledger cannot resolve is recorded in Result.Missing and
//     its write is skipped; the event as a whole still succeeds.
//
// FetchObjects batches the ids an event references into a single
// GetObjects call:
//
//	objs, err := reconcile.FetchObjects(ctx, client, ev.ReservationID, ev.RoomID)
//	if err != nil {
//	    return err
//	}
//	if obj, ok := objs.Get(ev.ReservationID); ok {
//	    ...
//	}
package reconcile
