package mirror

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no record has the requested object id.
var ErrNotFound = errors.New("record not found")

// Store is the mirror persistence contract. Every upsert is a single
// atomic statement keyed by ObjectID.
type Store interface {
	UpsertHotel(ctx context.Context, h *Hotel) error
	UpsertRoom(ctx context.Context, r *Room) error
	UpsertReservation(ctx context.Context, r *Reservation) error
	UpsertReview(ctx context.Context, r *Review) error

	// ListHotels returns every hotel newest first, or only those of owner
	// when set.
	ListHotels(ctx context.Context, owner string) ([]Hotel, error)
	GetHotel(ctx context.Context, objectID string) (*Hotel, error)
	ListRoomsByHotel(ctx context.Context, hotelID string) ([]Room, error)
	GetRoom(ctx context.Context, objectID string) (*Room, error)
	ListReviewsByHotel(ctx context.Context, hotelID string) ([]Review, error)
	ListReservationsByGuest(ctx context.Context, guest string) ([]Reservation, error)
	GetReservation(ctx context.Context, objectID string) (*Reservation, error)

	// SetHotelImage records the off-chain image of an indexed hotel. It
	// returns ErrNotFound when the hotel is not mirrored yet.
	SetHotelImage(ctx context.Context, objectID, imageURL string) error
}

// Upsert column sets. Hotel image_url is curated off-chain and never
// overwritten from ledger state.
var (
	hotelColumns       = []string{"name", "physical_address", "owner", "treasury"}
	roomColumns        = []string{"hotel_id", "price_per_day", "is_booked", "image_url"}
	reservationColumns = []string{"room_id", "hotel_id", "guest_address", "start_date", "end_date", "total_cost", "is_active"}
	reviewColumns      = []string{"hotel_id", "reservation_id", "guest_address", "rating", "comment"}
)
