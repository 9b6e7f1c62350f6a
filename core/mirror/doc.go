// Package mirror holds the off-chain projection of the hotel booking
// contract: hotels, rooms, reservations and reviews keyed by their
// on-chain object id.
//
// Every write is an upsert on object_id (ON CONFLICT / ON DUPLICATE KEY for
// SQL, UpdateOne with upsert for mongo), so replaying an event converges on
// the same row. Columns that only exist off-chain, such as a hotel's image
// url, are left out of the update set.
//
// Store is consumed by the reconciliation handlers (writes) and by the
// read API (queries). GormStore backs mysql and sqlite; MongoStore backs
// mongo.
package mirror
