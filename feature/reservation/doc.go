// Package reservation reconciles the booking lifecycle into the mirror.
//
// RoomBooked and ReservationCancelled each produce two independent
// upserts: the reservation itself and the reserved room. The is_active
// and is_booked flags are taken from the event kind rather than the
// fetched object, so whichever event the ledger delivered last decides
// the final state even when both are replayed against the same
// (already cancelled) object. ReservationRescheduled refreshes only the
// reservation.
//
// Routes (under /api):
//
//	GET /reservations?address=<guest>
//	GET /reservations/:reservationId
package reservation
