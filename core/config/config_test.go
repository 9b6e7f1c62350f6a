package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "devnet", cfg.Ledger.Network)
	assert.Equal(t, "hotel_booking", cfg.Ledger.Module)
	assert.Equal(t, "sui_events", cfg.Indexer.StreamKey)
	assert.Equal(t, 10, cfg.Indexer.IntervalSeconds)
	assert.Equal(t, 50, cfg.Indexer.PageLimit)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("LEDGER_PACKAGE_ID", "0xpkg")
	t.Setenv("INDEXER_CRON_SECRET", "s3cret")
	t.Setenv("INDEXER_INTERVAL_SECONDS", "3")
	t.Setenv("DATABASE_DRIVER", "mysql")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0xpkg", cfg.Ledger.PackageID)
	assert.Equal(t, "s3cret", cfg.Indexer.CronSecret)
	assert.Equal(t, 3, cfg.Indexer.IntervalSeconds)
	assert.Equal(t, "mysql", cfg.Database.Driver)
}
