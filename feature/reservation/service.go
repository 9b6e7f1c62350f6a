package reservation

import (
	"context"

	"hotel-indexer/core/mirror"

	"go.uber.org/zap"
)

// Service serves reservation reads from the mirror.
type Service struct {
	store  mirror.Store
	logger *zap.Logger
}

// NewService creates a new reservation service.
func NewService(store mirror.Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// ListByGuest returns the reservations of a guest address, latest stay first.
func (s *Service) ListByGuest(ctx context.Context, address string) ([]mirror.Reservation, error) {
	return s.store.ListReservationsByGuest(ctx, address)
}

// Get returns a single reservation by object id.
func (s *Service) Get(ctx context.Context, objectID string) (*mirror.Reservation, error) {
	return s.store.GetReservation(ctx, objectID)
}
