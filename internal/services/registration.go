package services

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/tutormatch-api/internal/logger"
	"github.com/harentsoaR/tutormatch-api/internal/models"
	"github.com/harentsoaR/tutormatch-api/internal/store"
)

var ErrMissingUID = errors.New("uid is required")

// Registrar implements create-or-fetch registration keyed by uid.
type Registrar struct {
	store  store.Gateway
	logger *logger.Logger
}

func NewRegistrar(gw store.Gateway, logger *logger.Logger) *Registrar {
	return &Registrar{store: gw, logger: logger}
}

// Register stores user unless a user with the same uid already exists, in
// which case the stored one is returned with Exists set. The boolean result
// reports whether a document was created.
//
// Lookup and insert are two separate operations. When the unique uid index
// rejects the insert because a concurrent request won, the winner's
// document is returned as existing.
func (r *Registrar) Register(ctx context.Context, user models.User) (models.User, bool, error) {
	if user.UID == "" {
		return models.User{}, false, ErrMissingUID
	}

	existing, found, err := r.byUID(ctx, user.UID)
	if err != nil {
		return models.User{}, false, err
	}
	if found {
		existing.Exists = true
		return existing, false, nil
	}

	user.ID = primitive.NilObjectID
	user.Exists = false
	id, err := r.store.Save(ctx, store.Users, &user)
	if errors.Is(err, store.ErrDuplicateKey) {
		r.logger.Info("concurrent registration detected", "uid", user.UID)
		existing, found, lerr := r.byUID(ctx, user.UID)
		if lerr != nil {
			return models.User{}, false, lerr
		}
		if found {
			existing.Exists = true
			return existing, false, nil
		}
	}
	if err != nil {
		return models.User{}, false, fmt.Errorf("register user: %w", err)
	}

	user.ID = id
	return user, true, nil
}

func (r *Registrar) byUID(ctx context.Context, uid string) (models.User, bool, error) {
	var user models.User
	found, err := r.store.FindOne(ctx, store.Users, bson.M{"uid": uid}, nil, &user)
	if err != nil {
		return models.User{}, false, fmt.Errorf("lookup user by uid: %w", err)
	}
	return user, found, nil
}
