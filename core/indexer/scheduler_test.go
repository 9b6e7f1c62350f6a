package indexer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type step struct {
	res *CycleResult
	err error
}

// scriptedRunner replays steps and cancels the loop when they run out.
type scriptedRunner struct {
	mu     sync.Mutex
	steps  []step
	calls  []time.Time
	cancel context.CancelFunc
}

func (r *scriptedRunner) RunCycle(ctx context.Context) (*CycleResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, time.Now())
	if len(r.calls) > len(r.steps) {
		r.cancel()
		return nil, ctx.Err()
	}
	s := r.steps[len(r.calls)-1]
	return s.res, s.err
}

func newTestScheduler(runner CycleRunner, logger *zap.Logger) *Scheduler {
	s := NewScheduler(runner, Config{}, logger)
	s.interval = 40 * time.Millisecond
	s.base = 5 * time.Millisecond
	s.max = 20 * time.Millisecond
	return s
}

func runWithTimeout(t *testing.T, s *Scheduler, ctx context.Context) error {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	select {
	case err := <-done:
		return err
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
		return nil
	}
}

func TestScheduler_DrainsPagesWithoutWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := &scriptedRunner{cancel: cancel, steps: []step{
		{res: &CycleResult{Fetched: 50, Advanced: true, HasMore: true}},
		{res: &CycleResult{Fetched: 50, Advanced: true, HasMore: true}},
		{res: &CycleResult{Fetched: 3}},
	}}

	err := runWithTimeout(t, newTestScheduler(r, nil), ctx)
	assert.NoError(t, err)

	require.Len(t, r.calls, 4)
	assert.Less(t, r.calls[2].Sub(r.calls[0]), 30*time.Millisecond, "pages with more events follow immediately")
	assert.GreaterOrEqual(t, r.calls[3].Sub(r.calls[2]), 40*time.Millisecond, "a caught-up cycle waits the interval")
}

func TestScheduler_BacksOffAndRecovers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	core, logs := observer.New(zap.InfoLevel)
	fail := errors.New("ledger unavailable")
	r := &scriptedRunner{cancel: cancel, steps: []step{
		{err: fail},
		{err: fail},
		{err: fail},
		{res: &CycleResult{}},
	}}

	err := runWithTimeout(t, newTestScheduler(r, zap.New(core)), ctx)
	assert.NoError(t, err, "cycle errors never escape the loop")

	require.Len(t, r.calls, 5)
	failures := logs.FilterMessage("Sync cycle failed").All()
	require.Len(t, failures, 3)
	assert.Equal(t, int64(3), failures[2].ContextMap()["consecutive_failures"])
	for _, f := range failures {
		wait := f.ContextMap()["retry_in"].(time.Duration)
		assert.LessOrEqual(t, wait, 20*time.Millisecond)
		assert.Greater(t, wait, time.Duration(0))
	}
	assert.Equal(t, 1, logs.FilterMessage("Sync loop recovered").Len())
}

func TestScheduler_StopsWhenCancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	r := &scriptedRunner{cancel: cancel, steps: []step{{res: &CycleResult{}}}}
	s := newTestScheduler(r, nil)
	s.interval = time.Hour

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	err := runWithTimeout(t, s, ctx)
	assert.NoError(t, err)
	assert.Len(t, r.calls, 1)
}

func TestScheduler_NotStartedWhenAlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &scriptedRunner{cancel: cancel}
	assert.NoError(t, newTestScheduler(r, nil).Run(ctx))
	assert.Empty(t, r.calls)
}

func TestScheduler_EmptyPageWithMoreWaitsInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A fullnode claiming more events while returning none must not spin.
	r := &scriptedRunner{cancel: cancel, steps: []step{
		{res: &CycleResult{HasMore: true}},
		{res: &CycleResult{HasMore: true}},
	}}

	err := runWithTimeout(t, newTestScheduler(r, nil), ctx)
	assert.NoError(t, err)

	require.Len(t, r.calls, 3)
	assert.GreaterOrEqual(t, r.calls[1].Sub(r.calls[0]), 40*time.Millisecond)
	assert.GreaterOrEqual(t, r.calls[2].Sub(r.calls[1]), 40*time.Millisecond)
}

func TestScheduler_TimedOutCycleBacksOff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	core, logs := observer.New(zap.InfoLevel)
	timeout := fmt.Errorf("query events: %w", context.DeadlineExceeded)
	r := &scriptedRunner{cancel: cancel, steps: []step{
		{err: timeout},
		{err: timeout},
		{res: &CycleResult{Fetched: 1, Advanced: true}},
	}}

	err := runWithTimeout(t, newTestScheduler(r, zap.New(core)), ctx)
	assert.NoError(t, err)

	require.Len(t, r.calls, 4, "a timed out cycle is retried, the loop keeps running")
	failures := logs.FilterMessage("Sync cycle failed").All()
	require.Len(t, failures, 2)
	for _, f := range failures {
		assert.Greater(t, f.ContextMap()["retry_in"].(time.Duration), time.Duration(0))
	}
	assert.Equal(t, 1, logs.FilterMessage("Sync loop recovered").Len())
}
