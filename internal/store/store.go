// Package store is the document store gateway used by the handlers and
// services. It hides the MongoDB driver behind a small per-collection API.
package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection names.
const (
	Users      = "user"
	Categories = "category"
	Sessions   = "session"
)

var (
	// ErrInvalidID is returned when a string cannot be turned into an ObjectID.
	ErrInvalidID = errors.New("invalid identifier")
	// ErrDuplicateKey is returned by Save when a unique index rejects the document.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Gateway is the set of operations the API needs from the document store.
// Update never upserts.
type Gateway interface {
	Find(ctx context.Context, collection string, filter bson.M, out any) error
	FindOne(ctx context.Context, collection string, filter, projection bson.M, out any) (bool, error)
	Save(ctx context.Context, collection string, doc any) (primitive.ObjectID, error)
	Update(ctx context.Context, collection string, filter, update bson.M) (UpdateResult, error)
	Ping(ctx context.Context) error
	EnsureIndexes(ctx context.Context) error
}

// UpdateResult is the acknowledgment of an update, shaped like the
// server's own write result.
type UpdateResult struct {
	Matched  int64 `json:"n"`
	Modified int64 `json:"nModified"`
	OK       int   `json:"ok"`
}

// ObjectID parses a hex identifier.
func ObjectID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, hex)
	}
	return id, nil
}

// ByID returns the predicate matching the document with the given hex id.
func ByID(hex string) (bson.M, error) {
	id, err := ObjectID(hex)
	if err != nil {
		return nil, err
	}
	return bson.M{"_id": id}, nil
}
