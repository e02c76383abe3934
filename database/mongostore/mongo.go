// File: database/mongostore/mongo.go
package mongostore

import (
	"context"
	"fmt"
	"time"

	"luxesalon/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "blobs"

type blobDocument struct {
	Key  string `bson:"_id"`
	Blob []byte `bson:"blob"`
}

// Store is a MongoDB-backed BlobStore. Each logical key maps to a single
// document; Save upserts the whole document so every write is a complete
// replace.
type Store struct {
	coll *mongo.Collection
}

// NewStore returns a blob store over the given database.
func NewStore(db *mongo.Database) *Store {
	return &Store{coll: db.Collection(collectionName)}
}

func newContext(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, 5*time.Second)
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := newContext(ctx)
	defer cancel()

	var doc blobDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, database.ErrKeyNotFound
		}
		return nil, fmt.Errorf("failed to load blob %q: %w", key, err)
	}
	return doc.Blob, nil
}

func (s *Store) Save(ctx context.Context, key string, blob []byte) error {
	ctx, cancel := newContext(ctx)
	defer cancel()

	filter := bson.M{"_id": key}
	update := bson.M{"$set": bson.M{"blob": blob}}
	opts := options.Update().SetUpsert(true)

	if _, err := s.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to save blob %q: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	ctx, cancel := newContext(ctx)
	defer cancel()

	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to delete blob %q: %w", key, err)
	}
	return nil
}
