package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/tutormatch-api/internal/store"
)

var _ store.Gateway = (*Gateway)(nil)

// Gateway mocks the store.Gateway interface.
type Gateway struct {
	mock.Mock
}

func (m *Gateway) Find(ctx context.Context, collection string, filter bson.M, out any) error {
	args := m.Called(ctx, collection, filter, out)
	return args.Error(0)
}

func (m *Gateway) FindOne(ctx context.Context, collection string, filter, projection bson.M, out any) (bool, error) {
	args := m.Called(ctx, collection, filter, projection, out)
	return args.Bool(0), args.Error(1)
}

func (m *Gateway) Save(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	args := m.Called(ctx, collection, doc)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *Gateway) Update(ctx context.Context, collection string, filter, update bson.M) (store.UpdateResult, error) {
	args := m.Called(ctx, collection, filter, update)
	return args.Get(0).(store.UpdateResult), args.Error(1)
}

func (m *Gateway) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *Gateway) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
