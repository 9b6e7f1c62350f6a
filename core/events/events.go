package events

import (
	"time"

	"hotel-indexer/core/ledger"
)

// Kind names an event variant by its Move struct name.
type Kind string

const (
	KindHotelCreated           Kind = "HotelCreated"
	KindRoomListed             Kind = "RoomListed"
	KindRoomBooked             Kind = "RoomBooked"
	KindReservationCancelled   Kind = "ReservationCancelled"
	KindReservationRescheduled Kind = "ReservationRescheduled"
	KindReviewPosted           Kind = "ReviewPosted"
	KindUnknown                Kind = "Unknown"
)

// Event is one decoded ledger event. The set of implementations is closed;
// consumers switch on the concrete type.
type Event interface {
	Envelope() Meta
	Kind() Kind
	sealed()
}

// Meta is the envelope shared by every variant.
type Meta struct {
	ID        ledger.EventID
	Type      string
	Sender    string
	Timestamp time.Time
}

func (m Meta) Envelope() Meta { return m }
func (Meta) sealed()          {}

// HotelCreated is emitted when a hotel object is created.
type HotelCreated struct {
	Meta
	HotelID string
	Owner   string
	Name    string
}

func (HotelCreated) Kind() Kind { return KindHotelCreated }

// RoomListed is emitted when a room is listed under a hotel.
type RoomListed struct {
	Meta
	RoomID      string
	HotelID     string
	PricePerDay int64
}

func (RoomListed) Kind() Kind { return KindRoomListed }

// RoomBooked is emitted when a reservation is created for a room.
type RoomBooked struct {
	Meta
	ReservationID string
	RoomID        string
	HotelID       string
	Guest         string
}

func (RoomBooked) Kind() Kind { return KindRoomBooked }

// ReservationCancelled is emitted when a guest cancels a reservation.
type ReservationCancelled struct {
	Meta
	ReservationID string
	RoomID        string
	HotelID       string
	Guest         string
}

func (ReservationCancelled) Kind() Kind { return KindReservationCancelled }

// ReservationRescheduled is emitted when a reservation's dates change.
type ReservationRescheduled struct {
	Meta
	ReservationID string
	RoomID        string
	HotelID       string
}

func (ReservationRescheduled) Kind() Kind { return KindReservationRescheduled }

// ReviewPosted is emitted when a guest reviews a hotel.
type ReviewPosted struct {
	Meta
	ReviewID      string
	HotelID       string
	ReservationID string
	Guest         string
	Rating        int
}

func (ReviewPosted) Kind() Kind { return KindReviewPosted }

// Unknown carries any event outside the known set.
type Unknown struct {
	Meta
}

func (Unknown) Kind() Kind { return KindUnknown }
