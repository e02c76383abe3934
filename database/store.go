package database

import (
	"context"
	"errors"
)

// Well-known blob keys. The persistent store holds exactly two logical
// documents: the serialized identity record and the serialized reservation
// collection.
const (
	KeyUser         = "salon_user"
	KeyReservations = "salon_appointments"
)

// ErrKeyNotFound is returned by Load when no blob exists under the key.
// Absence means "no prior state", not a failure.
var ErrKeyNotFound = errors.New("store: key not found")

// BlobStore is the narrow persistence contract the core writes through.
// Every Save is a complete, atomic replace of the blob under the key; no
// partial-write states are observable.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
	Delete(ctx context.Context, key string) error
}
