// Package mongo connects the document-store flavour of the mirror.
//
// When database.driver is "mongo" the cursor and mirror stores persist into
// MongoDB collections instead of SQL tables; the collections mirror the
// original deployment of this indexer, where every record was a document
// keyed by its on-chain objectId.
package mongo
