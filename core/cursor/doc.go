// Package cursor persists the indexer's position in the ledger event
// stream.
//
// One row (or document) per stream key is stored in last_processed:
//
//	{key: "sui_events", cursor: <eventSeq>, txDigest: <digest>, version, updatedAt}
//
// Save is a compare-and-set on version. The first save for a key expects
// version 0 and creates version 1; every later save must present the
// version it loaded. A stale writer gets ErrConflict and nothing is
// written, so two sync loops racing on the same key cannot move the
// cursor backwards.
//
// GormStore serves the mysql and sqlite drivers; MongoStore serves mongo.
package cursor
