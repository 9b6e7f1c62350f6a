package checks

import (
	"context"

	"hotel-indexer/core/ledger"
)

// LedgerReport is the result of a fullnode reachability check.
type LedgerReport struct {
	Reachable bool            `json:"reachable"`
	Latest    *ledger.EventID `json:"latest,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// CheckLedger asks the fullnode for the newest event of the contract module.
// An unreachable node is reported, not returned as an error.
func CheckLedger(ctx context.Context, client ledger.Client, filter ledger.EventFilter) *LedgerReport {
	page, err := client.QueryEvents(ctx, ledger.QueryEventsRequest{
		Filter:     filter,
		Limit:      1,
		Descending: true,
	})
	if err != nil {
		return &LedgerReport{Error: err.Error()}
	}

	report := &LedgerReport{Reachable: true}
	if len(page.Data) > 0 {
		report.Latest = &page.Data[0].ID
	}
	return report
}
