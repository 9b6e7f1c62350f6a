package cursor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-indexer/core/ledger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps cursors in the last_processed collection.
type MongoStore struct {
	coll *mongo.Collection
}

// NewMongoStore creates a cursor store over db.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{coll: db.Collection(TableName)}
}

// Migrate creates the unique index on key.
func (s *MongoStore) Migrate(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "key", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("migrate %s: %w", TableName, err)
	}
	return nil
}

// Load reads the cursor for key.
func (s *MongoStore) Load(ctx context.Context, key string) (*Cursor, error) {
	var c Cursor
	err := s.coll.FindOne(ctx, bson.M{"key": key}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cursor %s: %w", key, err)
	}
	return &c, nil
}

// Save performs a compare-and-set on the version field.
func (s *MongoStore) Save(ctx context.Context, key string, position ledger.EventID, expectedVersion int64) (*Cursor, error) {
	next := &Cursor{
		Key:       key,
		EventSeq:  position.EventSeq,
		TxDigest:  position.TxDigest,
		Version:   expectedVersion + 1,
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if expectedVersion == 0 {
		if _, err := s.coll.InsertOne(ctx, next); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, fmt.Errorf("save cursor %s: %w", key, ErrConflict)
			}
			return nil, fmt.Errorf("save cursor %s: %w", key, err)
		}
		return next, nil
	}

	res, err := s.coll.UpdateOne(ctx,
		bson.M{"key": key, "version": expectedVersion},
		bson.M{"$set": bson.M{
			"cursor":    next.EventSeq,
			"txDigest":  next.TxDigest,
			"version":   next.Version,
			"updatedAt": next.UpdatedAt,
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("save cursor %s: %w", key, err)
	}
	if res.MatchedCount == 0 {
		return nil, fmt.Errorf("save cursor %s at version %d: %w", key, expectedVersion, ErrConflict)
	}
	return next, nil
}

// Reset deletes the cursor document.
func (s *MongoStore) Reset(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"key": key}); err != nil {
		return fmt.Errorf("reset cursor %s: %w", key, err)
	}
	return nil
}
