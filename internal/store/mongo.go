package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ Gateway = (*Mongo)(nil)

// Mongo implements Gateway on top of a MongoDB database handle.
type Mongo struct {
	db      *mongo.Database
	timeout time.Duration
}

// NewMongo wraps db. Every operation is bounded by timeout when it is positive.
func NewMongo(db *mongo.Database, timeout time.Duration) *Mongo {
	return &Mongo{db: db, timeout: timeout}
}

// Connect opens a client for uri and verifies it with a ping.
func Connect(ctx context.Context, uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return client, nil
}

func (m *Mongo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, m.timeout)
}

// Find decodes every document matching filter into out, which must be a
// pointer to a slice. A nil slice stays nil when nothing matches.
func (m *Mongo) Find(ctx context.Context, collection string, filter bson.M, out any) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := m.db.Collection(collection).Find(ctx, filter)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s: %w", collection, err)
	}
	return nil
}

// FindOne decodes the first document matching filter into out. A missing
// document is reported as found == false, not as an error.
func (m *Mongo) FindOne(ctx context.Context, collection string, filter, projection bson.M, out any) (bool, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	opts := options.FindOne()
	if len(projection) > 0 {
		opts.SetProjection(projection)
	}
	err := m.db.Collection(collection).FindOne(ctx, filter, opts).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find one in %s: %w", collection, err)
	}
	return true, nil
}

// Save inserts doc and returns its identifier.
func (m *Mongo) Save(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return primitive.NilObjectID, fmt.Errorf("insert into %s: %w: %v", collection, ErrDuplicateKey, err)
		}
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", collection, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return id, nil
}

// Update applies update to the first document matching filter. It never
// creates a document.
func (m *Mongo) Update(ctx context.Context, collection string, filter, update bson.M) (UpdateResult, error) {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	res, err := m.db.Collection(collection).UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return UpdateResult{}, fmt.Errorf("update %s: %w", collection, err)
	}
	return UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount, OK: 1}, nil
}

func (m *Mongo) Ping(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()
	return m.db.Client().Ping(ctx, nil)
}

// EnsureIndexes creates the unique index on user.uid.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := m.withTimeout(ctx)
	defer cancel()

	_, err := m.db.Collection(Users).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "uid", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uid_unique"),
	})
	if err != nil {
		return fmt.Errorf("create uid index: %w", err)
	}
	return nil
}
