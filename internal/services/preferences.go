package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/tutormatch-api/internal/logger"
	"github.com/harentsoaR/tutormatch-api/internal/models"
	"github.com/harentsoaR/tutormatch-api/internal/store"
)

// PreferenceResolver expands a user's preference references into the
// category documents they point to.
type PreferenceResolver struct {
	store  store.Gateway
	logger *logger.Logger
}

func NewPreferenceResolver(gw store.Gateway, logger *logger.Logger) *PreferenceResolver {
	return &PreferenceResolver{store: gw, logger: logger}
}

// Resolve returns the categories referenced by pref.<role> of the user.
// A user that cannot be read, or that has no preferences for the role,
// resolves to an empty list; the category query is skipped in that case.
// The result is in store order, not in preference order.
func (r *PreferenceResolver) Resolve(ctx context.Context, userID string, role models.Role) ([]models.Category, error) {
	categories := make([]models.Category, 0)

	filter, err := store.ByID(userID)
	if err != nil {
		r.logger.Debug("preference lookup skipped", "user_id", userID, "error", err)
		return categories, nil
	}

	var user models.User
	found, err := r.store.FindOne(ctx, store.Users, filter, bson.M{role.Field("pref"): 1}, &user)
	if err != nil {
		r.logger.Warn("preference lookup failed", "user_id", userID, "role", role, "error", err)
		return categories, nil
	}
	if !found {
		return categories, nil
	}

	ids := r.categoryIDs(user.Pref.For(role))
	if len(ids) == 0 {
		return categories, nil
	}

	if err := r.store.Find(ctx, store.Categories, bson.M{"_id": bson.M{"$in": ids}}, &categories); err != nil {
		return nil, fmt.Errorf("resolve %s preferences: %w", role, err)
	}
	return categories, nil
}

// categoryIDs normalizes stored references, dropping the ones that are not
// valid identifiers.
func (r *PreferenceResolver) categoryIDs(refs []string) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(refs))
	for _, ref := range refs {
		id, err := store.ObjectID(ref)
		if err != nil {
			r.logger.Debug("ignoring unresolvable preference", "ref", ref)
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
