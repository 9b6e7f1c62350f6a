// Package ledger reads the Sui blockchain on behalf of the indexer.
//
// The Client contract exposes the two reads the sync core needs: a paged,
// ascending event query filtered to one Move module and a batch object
// fetch. SuiClient implements it over Sui JSON-RPC 2.0
// (suix_queryEvents, sui_multiGetObjects) using the fiber HTTP agent.
//
// Every failure (transport, HTTP status, JSON-RPC error object, decode)
// wraps ErrUnavailable so callers can treat it as transient:
//
//	page, err := client.QueryEvents(ctx, ledger.QueryEventsRequest{
//	    Filter: ledger.EventFilter{Package: cfg.PackageID, Module: cfg.Module},
//	    Cursor: cursor,
//	    Limit:  50,
//	})
//	if errors.Is(err, ledger.ErrUnavailable) {
//	    // retry later
//	}
//
// Objects that were deleted or are not yet visible are omitted from
// GetObjects results rather than reported as errors.
package ledger
