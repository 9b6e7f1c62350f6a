package cursor

import (
	"context"
	"errors"
	"time"

	"hotel-indexer/core/ledger"
)

// TableName is the table (or collection) holding one row per stream key.
const TableName = "last_processed"

// ErrConflict is returned when another writer advanced the cursor first.
var ErrConflict = errors.New("cursor version conflict")

// Cursor is the persisted progress marker of one event stream.
type Cursor struct {
	Key       string    `gorm:"column:key;primaryKey;size:64" bson:"key" json:"key"`
	EventSeq  string    `gorm:"column:cursor;size:64;not null" bson:"cursor" json:"cursor"`
	TxDigest  string    `gorm:"column:tx_digest;size:128;not null" bson:"txDigest" json:"txDigest"`
	Version   int64     `gorm:"column:version;not null" bson:"version" json:"version"`
	UpdatedAt time.Time `gorm:"column:updated_at" bson:"updatedAt" json:"updatedAt"`
}

// TableName maps Cursor to the last_processed table.
func (Cursor) TableName() string {
	return TableName
}

// Position returns the ledger position stored in the cursor.
func (c *Cursor) Position() ledger.EventID {
	return ledger.EventID{TxDigest: c.TxDigest, EventSeq: c.EventSeq}
}

// Store persists cursors keyed by stream.
type Store interface {
	// Load returns nil without error when nothing was saved for the key.
	Load(ctx context.Context, key string) (*Cursor, error)
	// Save writes position when the stored version equals expectedVersion
	// (0 meaning no row yet) and returns the new cursor. A mismatch
	// returns ErrConflict and writes nothing.
	Save(ctx context.Context, key string, position ledger.EventID, expectedVersion int64) (*Cursor, error)
	// Reset removes the cursor so the next cycle starts from the beginning.
	Reset(ctx context.Context, key string) error
}
