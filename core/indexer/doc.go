// Package indexer drives the synchronisation of the mirror with the ledger.
//
// A Runner executes one cycle at a time:
//
//	IDLE -> FETCHING -> PROCESSING -> ADVANCING -> IDLE
//
// It loads the cursor, fetches one ascending page of events, decodes and
// dispatches them strictly in delivered order, and only then saves the
// next cursor with a compare-and-set. Any dispatch or save failure aborts
// the cycle with the old cursor intact; because every handler upserts,
// the next cycle can safely replay the page.
//
// A bounded Deduper keyed "txDigest::eventSeq" skips events already
// applied by this process when the ledger returns overlapping pages. Keys
// are marked only after their handler succeeded.
//
// Scheduler wraps a Runner for continuous mode. It waits the poll
// interval after a caught-up cycle, loops immediately while the ledger
// reports more pages, and backs off with capped exponential delays after
// failures. Triggered mode (the HTTP endpoint or "sync --once") calls
// RunCycle directly; concurrent calls collapse into one in-flight cycle.
package indexer
