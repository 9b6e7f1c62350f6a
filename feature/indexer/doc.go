// Package indexer exposes the sync runner over HTTP so an external cron can
// drive it.
//
// # HTTP Endpoints
//
//   - GET|POST /indexer/run : Runs one cycle. Requires "Authorization: Bearer <cron secret>";
//     the credential is checked before the ledger is touched.
//   - GET /indexer/status : Returns the persisted cursor and the last cycle outcome.
//
// A trigger that arrives while the embedded loop is mid-cycle joins that
// cycle instead of starting a second one.
package indexer
