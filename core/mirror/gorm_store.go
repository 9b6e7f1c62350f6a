package mirror

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore implements Store for the mysql and sqlite drivers.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a mirror store over db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the mirror tables with a unique index on object_id.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("migrate mirror: %w", err)
	}
	return nil
}

func (s *GormStore) upsert(ctx context.Context, value any, columns []string) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "object_id"}},
		DoUpdates: clause.AssignmentColumns(append(columns, "updated_at")),
	}).Create(value).Error
}

func (s *GormStore) UpsertHotel(ctx context.Context, h *Hotel) error {
	if err := s.upsert(ctx, h, hotelColumns); err != nil {
		return fmt.Errorf("upsert hotel %s: %w", h.ObjectID, err)
	}
	return nil
}

func (s *GormStore) UpsertRoom(ctx context.Context, r *Room) error {
	if err := s.upsert(ctx, r, roomColumns); err != nil {
		return fmt.Errorf("upsert room %s: %w", r.ObjectID, err)
	}
	return nil
}

func (s *GormStore) UpsertReservation(ctx context.Context, r *Reservation) error {
	if err := s.upsert(ctx, r, reservationColumns); err != nil {
		return fmt.Errorf("upsert reservation %s: %w", r.ObjectID, err)
	}
	return nil
}

func (s *GormStore) UpsertReview(ctx context.Context, r *Review) error {
	if err := s.upsert(ctx, r, reviewColumns); err != nil {
		return fmt.Errorf("upsert review %s: %w", r.ObjectID, err)
	}
	return nil
}

func (s *GormStore) ListHotels(ctx context.Context, owner string) ([]Hotel, error) {
	q := s.db.WithContext(ctx).Order("id DESC")
	if owner != "" {
		q = q.Where("owner = ?", owner)
	}
	hotels := []Hotel{}
	if err := q.Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	return hotels, nil
}

func (s *GormStore) GetHotel(ctx context.Context, objectID string) (*Hotel, error) {
	var h Hotel
	if err := s.first(ctx, &h, objectID); err != nil {
		return nil, fmt.Errorf("get hotel %s: %w", objectID, err)
	}
	return &h, nil
}

func (s *GormStore) ListRoomsByHotel(ctx context.Context, hotelID string) ([]Room, error) {
	rooms := []Room{}
	if err := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("id").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list rooms of %s: %w", hotelID, err)
	}
	return rooms, nil
}

func (s *GormStore) GetRoom(ctx context.Context, objectID string) (*Room, error) {
	var r Room
	if err := s.first(ctx, &r, objectID); err != nil {
		return nil, fmt.Errorf("get room %s: %w", objectID, err)
	}
	return &r, nil
}

func (s *GormStore) ListReviewsByHotel(ctx context.Context, hotelID string) ([]Review, error) {
	reviews := []Review{}
	if err := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Order("created_at DESC").Order("id DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews of %s: %w", hotelID, err)
	}
	return reviews, nil
}

func (s *GormStore) ListReservationsByGuest(ctx context.Context, guest string) ([]Reservation, error) {
	reservations := []Reservation{}
	if err := s.db.WithContext(ctx).Where("guest_address = ?", guest).Order("start_date DESC").Find(&reservations).Error; err != nil {
		return nil, fmt.Errorf("list reservations of %s: %w", guest, err)
	}
	return reservations, nil
}

func (s *GormStore) GetReservation(ctx context.Context, objectID string) (*Reservation, error) {
	var r Reservation
	if err := s.first(ctx, &r, objectID); err != nil {
		return nil, fmt.Errorf("get reservation %s: %w", objectID, err)
	}
	return &r, nil
}

func (s *GormStore) SetHotelImage(ctx context.Context, objectID, imageURL string) error {
	res := s.db.WithContext(ctx).Model(&Hotel{}).Where("object_id = ?", objectID).Update("image_url", imageURL)
	if res.Error != nil {
		return fmt.Errorf("set hotel image %s: %w", objectID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("set hotel image %s: %w", objectID, ErrNotFound)
	}
	return nil
}

func (s *GormStore) first(ctx context.Context, dest any, objectID string) error {
	err := s.db.WithContext(ctx).Where("object_id = ?", objectID).Take(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
