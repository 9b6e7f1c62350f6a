package cursor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-indexer/core/ledger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore keeps cursors in a SQL table.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a cursor store over db.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates the last_processed table.
func (s *GormStore) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&Cursor{}); err != nil {
		return fmt.Errorf("migrate %s: %w", TableName, err)
	}
	return nil
}

func keyEq(key string) clause.Eq {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}

// Load reads the cursor for key.
func (s *GormStore) Load(ctx context.Context, key string) (*Cursor, error) {
	var c Cursor
	err := s.db.WithContext(ctx).Where(keyEq(key)).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cursor %s: %w", key, err)
	}
	return &c, nil
}

// Save performs a compare-and-set on the version column.
func (s *GormStore) Save(ctx context.Context, key string, position ledger.EventID, expectedVersion int64) (*Cursor, error) {
	next := &Cursor{
		Key:       key,
		EventSeq:  position.EventSeq,
		TxDigest:  position.TxDigest,
		Version:   expectedVersion + 1,
		UpdatedAt: time.Now().UTC(),
	}

	if expectedVersion == 0 {
		res := s.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(next)
		if res.Error != nil {
			return nil, fmt.Errorf("save cursor %s: %w", key, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("save cursor %s: %w", key, ErrConflict)
		}
		return next, nil
	}

	res := s.db.WithContext(ctx).Model(&Cursor{}).
		Where(keyEq(key)).
		Where(clause.Eq{Column: clause.Column{Name: "version"}, Value: expectedVersion}).
		Updates(map[string]any{
			"cursor":     next.EventSeq,
			"tx_digest":  next.TxDigest,
			"version":    next.Version,
			"updated_at": next.UpdatedAt,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("save cursor %s: %w", key, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("save cursor %s at version %d: %w", key, expectedVersion, ErrConflict)
	}
	return next, nil
}

// Reset deletes the cursor row.
func (s *GormStore) Reset(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Where(keyEq(key)).Delete(&Cursor{}).Error; err != nil {
		return fmt.Errorf("reset cursor %s: %w", key, err)
	}
	return nil
}
