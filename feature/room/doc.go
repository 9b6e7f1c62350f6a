// Package room reconciles RoomListed events into the mirror and serves the
// room read endpoints. FromObject is shared with the reservation handlers,
// which rewrite a room's booked flag on booking and cancellation.
package room
