package room

import (
	"context"
	"errors"

	"hotel-indexer/core/mirror"

	"go.uber.org/zap"
)

// ErrWrongHotel is returned when a room exists but belongs to another hotel.
var ErrWrongHotel = errors.New("room does not belong to this hotel")

// Service serves room reads from the mirror.
type Service struct {
	store  mirror.Store
	logger *zap.Logger
}

// NewService creates a new room service.
func NewService(store mirror.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// GetRoom returns a single room by object id.
func (s *Service) GetRoom(ctx context.Context, objectID string) (*mirror.Room, error) {
	return s.store.GetRoom(ctx, objectID)
}

// ListRooms returns the rooms of a hotel.
func (s *Service) ListRooms(ctx context.Context, hotelID string) ([]mirror.Room, error) {
	return s.store.ListRoomsByHotel(ctx, hotelID)
}

// GetHotelRoom returns a room only if it belongs to hotelID.
func (s *Service) GetHotelRoom(ctx context.Context, hotelID, roomID string) (*mirror.Room, error) {
	room, err := s.store.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room.HotelID != hotelID {
		return nil, ErrWrongHotel
	}
	return room, nil
}
