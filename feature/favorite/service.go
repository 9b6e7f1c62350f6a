package favorite

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when removing a favourite that does not exist.
var ErrNotFound = errors.New("favorite not found")

// Service manages favourites in the SQL database.
type Service struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new favourite service.
func NewService(db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// Migrate creates the favorites table.
func (s *Service) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Favorite{}); err != nil {
		return fmt.Errorf("migrate favorites: %w", err)
	}
	return nil
}

// Add favourites roomID for userID. It reports whether a new row was created;
// an existing favourite is returned unchanged.
func (s *Service) Add(ctx context.Context, roomID, userID string) (*Favorite, bool, error) {
	fav := &Favorite{RoomID: roomID, UserID: userID}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(fav)
	if res.Error != nil {
		return nil, false, fmt.Errorf("add favorite: %w", res.Error)
	}
	if res.RowsAffected == 1 {
		return fav, true, nil
	}

	var existing Favorite
	if err := s.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		First(&existing).Error; err != nil {
		return nil, false, fmt.Errorf("load favorite: %w", err)
	}
	return &existing, false, nil
}

// Remove deletes the favourite of roomID by userID.
func (s *Service) Remove(ctx context.Context, roomID, userID string) error {
	res := s.db.WithContext(ctx).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Delete(&Favorite{})
	if res.Error != nil {
		return fmt.Errorf("remove favorite: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByUser returns the favourites of userID, oldest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Favorite, error) {
	favorites := []Favorite{}
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return favorites, nil
}
