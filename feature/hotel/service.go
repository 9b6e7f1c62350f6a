package hotel

import (
	"context"

	"hotel-indexer/core/mirror"

	"go.uber.org/zap"
)

// Service serves hotel reads from the mirror.
type Service struct {
	store  mirror.Store
	logger *zap.Logger
}

// NewService creates a new hotel service.
func NewService(store mirror.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ListHotels returns all hotels, filtered by owner when given.
func (s *Service) ListHotels(ctx context.Context, owner string) ([]mirror.Hotel, error) {
	return s.store.ListHotels(ctx, owner)
}

// SetImage attaches an off-chain image URL to an indexed hotel.
func (s *Service) SetImage(ctx context.Context, objectID, imageURL string) error {
	return s.store.SetHotelImage(ctx, objectID, imageURL)
}

// GetHotel returns a single hotel by object id.
func (s *Service) GetHotel(ctx context.Context, objectID string) (*mirror.Hotel, error) {
	return s.store.GetHotel(ctx, objectID)
}
