// Package database handles SQL connections and schema inspection for the mirror.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// based on the application's configuration. SQLite goes through the pure-Go
// modernc.org/sqlite driver so that single-binary deployments and tests need
// no external database.
//
// # Connect
//
// Connect opens the dialector selected by Config.Driver, applies pool settings
// and pings the database within Config.TimeoutSeconds.
//
// # Schema Inspection
//
// GetTableColumns lists the columns of a table (SHOW COLUMNS on MySQL,
// PRAGMA table_info on SQLite). The integrity feature uses it to verify that the
// mirror tables carry the columns the sync core writes.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "rooms")
package database
