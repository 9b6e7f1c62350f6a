package indexer

import "time"

// Config holds configuration for the sync loop and its HTTP trigger.
type Config struct {
	// StreamKey identifies the cursor row of this event stream.
	StreamKey string `mapstructure:"stream_key" default:"sui_events"`
	// IntervalSeconds is the pause between cycles once caught up.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"10"`
	// PageLimit is the maximum number of events fetched per cycle.
	PageLimit int `mapstructure:"page_limit" default:"50"`
	// BackoffBaseSeconds is the first delay after a failed cycle.
	BackoffBaseSeconds int `mapstructure:"backoff_base_seconds" default:"1"`
	// BackoffMaxSeconds caps the delay between failed cycles.
	BackoffMaxSeconds int `mapstructure:"backoff_max_seconds" default:"60"`
	// CallTimeoutSeconds bounds each ledger or storage call of a cycle.
	CallTimeoutSeconds int `mapstructure:"call_timeout_seconds" default:"30"`
	// DedupCapacity bounds the in-memory set of processed event keys.
	DedupCapacity int `mapstructure:"dedup_capacity" default:"10000"`
	// CronSecret is the bearer token expected by the trigger endpoint.
	CronSecret string `mapstructure:"cron_secret" default:""`
	// Embedded runs the continuous loop inside the serve command.
	Embedded bool `mapstructure:"embedded" default:"false"`
}

func seconds(n, fallback int) time.Duration {
	if n <= 0 {
		n = fallback
	}
	return time.Duration(n) * time.Second
}

// Interval returns the idle wait between cycles.
func (c Config) Interval() time.Duration { return seconds(c.IntervalSeconds, 10) }

// BackoffBase returns the initial error backoff.
func (c Config) BackoffBase() time.Duration { return seconds(c.BackoffBaseSeconds, 1) }

// BackoffMax returns the error backoff cap.
func (c Config) BackoffMax() time.Duration { return seconds(c.BackoffMaxSeconds, 60) }

// CallTimeout returns the per-call timeout inside a cycle.
func (c Config) CallTimeout() time.Duration { return seconds(c.CallTimeoutSeconds, 30) }

// Limit returns the page size.
func (c Config) Limit() int {
	if c.PageLimit <= 0 {
		return 50
	}
	return c.PageLimit
}

// Key returns the cursor stream key.
func (c Config) Key() string {
	if c.StreamKey == "" {
		return "sui_events"
	}
	return c.StreamKey
}
