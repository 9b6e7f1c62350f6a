package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"hotel-indexer/core/cursor"
	"hotel-indexer/core/events"
	"hotel-indexer/core/ledger"
	"hotel-indexer/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Dispatcher applies one decoded event to the mirror.
type Dispatcher interface {
	Dispatch(ctx context.Context, ev events.Event) (*reconcile.Result, error)
}

// CycleResult summarises one pass over a page of events.
type CycleResult struct {
	// Fetched is the number of events the ledger returned.
	Fetched int `json:"fetched"`
	// Applied counts events dispatched to a handler.
	Applied int `json:"applied"`
	// Duplicates counts events skipped by the dedup guard.
	Duplicates int `json:"duplicates"`
	// Ignored counts events of unknown type.
	Ignored int `json:"ignored"`
	// Malformed counts known events whose payload could not be decoded.
	Malformed int `json:"malformed"`
	// Missing counts referenced objects the ledger could not resolve.
	Missing int `json:"missing"`
	// Advanced is set when the cursor was saved.
	Advanced bool `json:"advanced"`
	// Cursor is the position after the cycle.
	Cursor *ledger.EventID `json:"cursor"`
	// HasMore reports that the ledger holds events past this page.
	HasMore bool `json:"hasMore"`
}

// Processed returns the number of events consumed from the page.
func (r *CycleResult) Processed() int {
	return r.Applied + r.Ignored + r.Malformed
}

// Status is the outcome of the most recent cycle.
type Status struct {
	LastRunAt  time.Time    `json:"lastRunAt"`
	LastResult *CycleResult `json:"lastResult,omitempty"`
	LastError  string       `json:"lastError,omitempty"`
}

// Options wires a Runner.
type Options struct {
	Config     Config
	Filter     ledger.EventFilter
	Ledger     ledger.Client
	Cursors    cursor.Store
	Dispatcher Dispatcher
	Logger     *zap.Logger
}

// Runner executes sync cycles. Concurrent RunCycle calls share a single
// in-flight cycle.
type Runner struct {
	cfg        Config
	filter     ledger.EventFilter
	ledger     ledger.Client
	cursors    cursor.Store
	dispatcher Dispatcher
	dedup      *Deduper
	logger     *zap.Logger

	group singleflight.Group

	mu     sync.RWMutex
	status Status
}

// NewRunner validates opts and creates a runner with its own dedup guard.
func NewRunner(opts Options) (*Runner, error) {
	switch {
	case opts.Ledger == nil:
		return nil, errors.New("runner: ledger client is required")
	case opts.Cursors == nil:
		return nil, errors.New("runner: cursor store is required")
	case opts.Dispatcher == nil:
		return nil, errors.New("runner: dispatcher is required")
	case opts.Filter.Package == "":
		return nil, errors.New("runner: ledger package id is required")
	}

	dedup, err := NewDeduper(opts.Config.DedupCapacity)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{
		cfg:        opts.Config,
		filter:     opts.Filter,
		ledger:     opts.Ledger,
		cursors:    opts.Cursors,
		dispatcher: opts.Dispatcher,
		dedup:      dedup,
		logger:     logger.With(zap.String("stream", opts.Config.Key())),
	}, nil
}

// Status returns the outcome of the most recent cycle.
func (r *Runner) Status() Status {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

// Cursor returns the persisted cursor, or nil before the first advance.
func (r *Runner) Cursor(ctx context.Context) (*cursor.Cursor, error) {
	return r.cursors.Load(ctx, r.cfg.Key())
}

// RunCycle fetches one page after the persisted cursor, applies it in
// delivered order and advances the cursor. The cursor only moves after
// every event of the page was handled. Once the page is fetched the
// cycle runs to completion even if ctx is cancelled.
func (r *Runner) RunCycle(ctx context.Context) (*CycleResult, error) {
	v, err, shared := r.group.Do(r.cfg.Key(), func() (any, error) {
		res, err := r.runCycle(ctx)
		r.record(res, err)
		return res, err
	})
	if shared {
		r.logger.Debug("Joined in-flight cycle")
	}
	if err != nil {
		return nil, err
	}
	return v.(*CycleResult), nil
}

func (r *Runner) record(res *CycleResult, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = Status{LastRunAt: time.Now().UTC(), LastResult: res}
	if err != nil {
		r.status.LastError = err.Error()
	}
}

func (r *Runner) runCycle(ctx context.Context) (*CycleResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := r.cfg.Key()
	started := time.Now()

	r.logger.Debug("Fetching events")

	loadCtx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout())
	current, err := r.cursors.Load(loadCtx, key)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("load cursor: %w", err)
	}

	var (
		position *ledger.EventID
		version  int64
	)
	if current != nil {
		p := current.Position()
		position = &p
		version = current.Version
	}

	queryCtx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout())
	page, err := r.ledger.QueryEvents(queryCtx, ledger.QueryEventsRequest{
		Filter: r.filter,
		Cursor: position,
		Limit:  r.cfg.Limit(),
	})
	cancel()
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}

	result := &CycleResult{
		Fetched: len(page.Data),
		Cursor:  position,
		HasMore: page.HasNextPage,
	}
	if len(page.Data) == 0 {
		r.logger.Debug("No new events")
		return result, nil
	}

	// Past this point a shutdown must not leave a half-applied page.
	work := context.WithoutCancel(ctx)

	r.logger.Debug("Processing events", zap.Int("count", len(page.Data)))
	for _, raw := range page.Data {
		if err := r.process(work, raw, result); err != nil {
			r.logger.Error("Cycle aborted, cursor not advanced",
				zap.String("event", raw.ID.Key()),
				zap.Error(err))
			return nil, err
		}
	}

	next := page.NextCursor
	if next == nil {
		last := page.Data[len(page.Data)-1].ID
		next = &last
	}

	r.logger.Debug("Advancing cursor", zap.String("to", next.Key()))
	saveCtx, cancel := context.WithTimeout(work, r.cfg.CallTimeout())
	saved, err := r.cursors.Save(saveCtx, key, *next, version)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("advance cursor: %w", err)
	}

	pos := saved.Position()
	result.Cursor = &pos
	result.Advanced = true

	r.logger.Info("Cycle complete",
		zap.Int("fetched", result.Fetched),
		zap.Int("applied", result.Applied),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("ignored", result.Ignored),
		zap.Int("malformed", result.Malformed),
		zap.Int("missing", result.Missing),
		zap.String("cursor", pos.Key()),
		zap.Bool("has_more", result.HasMore),
		zap.Duration("took", time.Since(started)))

	return result, nil
}

func (r *Runner) process(ctx context.Context, raw ledger.Event, result *CycleResult) error {
	key := raw.ID.Key()
	if r.dedup.Seen(key) {
		result.Duplicates++
		return nil
	}

	ev, err := events.Decode(r.filter.Package, r.filter.Module, raw)
	if err != nil {
		if errors.Is(err, events.ErrMalformed) {
			r.logger.Warn("Skipping malformed event", zap.String("event", key), zap.Error(err))
			result.Malformed++
			r.dedup.Mark(key)
			return nil
		}
		return fmt.Errorf("decode %s: %w", key, err)
	}

	callCtx, cancel := context.WithTimeout(ctx, r.cfg.CallTimeout())
	res, err := r.dispatcher.Dispatch(callCtx, ev)
	cancel()
	if err != nil {
		return fmt.Errorf("dispatch %s: %w", key, err)
	}
	r.dedup.Mark(key)

	if res.Ignored {
		result.Ignored++
		return nil
	}
	result.Applied++
	result.Missing += len(res.Missing)
	for _, id := range res.Missing {
		r.logger.Warn("Referenced object not found on ledger, write skipped",
			zap.String("event", key),
			zap.String("kind", string(res.Kind)),
			zap.String("object_id", id))
	}
	return nil
}
