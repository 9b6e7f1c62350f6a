// Package integrity provides infrastructure health checks for the indexer.
//
// # Checks Provided
//
//   - Schema: Validates that the mirror, cursor and favourite tables exist with every column
//     the GORM models declare. Skipped when the stores run on mongo.
//   - Storage: Checks that the image bucket exists and accepts writes (a probe object is
//     written and removed).
//   - Ledger: Confirms the fullnode answers an event query for the contract module.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/schema : Runs schema check (supports ?fix=true).
//   - GET /integrity/storage : Runs storage check (supports ?fix=true).
//   - GET /integrity/ledger : Runs ledger check.
package integrity
