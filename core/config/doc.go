// Package config provides configuration management for the hotel indexer.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file (loaded through godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: mirror store connection (mysql, sqlite or mongo)
//   - Storage: S3/MinIO credentials and bucket for uploaded images
//   - Ledger: Sui network, RPC URL, package id and event module
//   - Indexer: stream key, poll interval, backoff and the scheduler secret
//   - Log: Logging level and format
//
// Every field declares its default through a `default` struct tag and can be
// overridden with an upper-cased, underscore-joined environment variable
// (e.g. LEDGER_PACKAGE_ID, INDEXER_CRON_SECRET).
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Indexer.IntervalSeconds)
package config
