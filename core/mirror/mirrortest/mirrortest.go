// Package mirrortest provides an in-memory mirror for tests.
package mirrortest

import (
	"context"
	"testing"

	"hotel-indexer/core/database"
	"hotel-indexer/core/mirror"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewGormStore returns a migrated mirror store on a private in-memory
// sqlite database.
func NewGormStore(t testing.TB) (*mirror.GormStore, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	store := mirror.NewGormStore(db)
	require.NoError(t, store.Migrate(context.Background()))
	return store, db
}

// NewBrokenStore returns a mirror store whose database is already closed,
// so every call fails.
func NewBrokenStore(t testing.TB) *mirror.GormStore {
	t.Helper()
	store, db := NewGormStore(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	return store
}
