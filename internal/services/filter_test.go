package services

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/tutormatch-api/internal/models"
)

func TestBuildFilter_BaseRolePredicate(t *testing.T) {
	for _, params := range []map[string]string{
		nil,
		{},
		{"sort": "name", "limit": "10"},
		{"state": "", "day": "", "pref": ""},
	} {
		assert.Equal(t, bson.M{"isTutor": true}, BuildFilter(models.RoleTutor, params))
		assert.Equal(t, bson.M{"isTutor": false}, BuildFilter(models.RoleTutee, params))
	}
}

func TestBuildFilter_Clauses(t *testing.T) {
	catID := primitive.NewObjectID()

	tests := []struct {
		name   string
		role   models.Role
		params map[string]string
		want   bson.M
	}{
		{
			name:   "tutor state and day",
			role:   models.RoleTutor,
			params: map[string]string{"state": "NY", "day": "Mon"},
			want: bson.M{
				"isTutor":            true,
				"location.state":     "NY",
				"availability.tutor": bson.M{"$elemMatch": bson.M{"day": "Mon"}},
			},
		},
		{
			name:   "full location for tutees",
			role:   models.RoleTutee,
			params: map[string]string{"country": "US", "state": "NY", "city": "Albany", "area": "Downtown"},
			want: bson.M{
				"isTutor":          false,
				"location.country": "US",
				"location.state":   "NY",
				"location.city":    "Albany",
				"location.area":    "Downtown",
			},
		},
		{
			name:   "tutor pref keeps the raw string",
			role:   models.RoleTutor,
			params: map[string]string{"pref": "math"},
			want: bson.M{
				"isTutor":    true,
				"pref.tutor": bson.M{"$in": bson.A{"math"}},
			},
		},
		{
			name:   "tutee pref is normalized to an ObjectID",
			role:   models.RoleTutee,
			params: map[string]string{"pref": catID.Hex(), "day": "Tue"},
			want: bson.M{
				"isTutor":            false,
				"pref.tutee":         bson.M{"$in": bson.A{catID}},
				"availability.tutee": bson.M{"$elemMatch": bson.M{"day": "Tue"}},
			},
		},
		{
			name:   "malformed tutee pref is treated as absent",
			role:   models.RoleTutee,
			params: map[string]string{"pref": "math", "city": "Boston"},
			want: bson.M{
				"isTutor":       false,
				"location.city": "Boston",
			},
		},
		{
			name:   "unknown keys are ignored",
			role:   models.RoleTutor,
			params: map[string]string{"area": "Harlem", "isTutor": "false", "foo": "bar"},
			want: bson.M{
				"isTutor":       true,
				"location.area": "Harlem",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildFilter(tt.role, tt.params))
		})
	}
}

func TestBuildFilter_ClauseCount(t *testing.T) {
	keys := []string{ParamState, ParamCountry, ParamCity, ParamArea, ParamPref, ParamDay}

	// Every subset of recognized keys, for both roles.
	for mask := 0; mask < 1<<len(keys); mask++ {
		params := map[string]string{"ignored": "x"}
		present := 0
		for i, k := range keys {
			if mask&(1<<i) != 0 {
				params[k] = primitive.NewObjectID().Hex()
				present++
			} else {
				params[k] = ""
			}
		}

		for _, role := range []models.Role{models.RoleTutor, models.RoleTutee} {
			filter := BuildFilter(role, params)
			assert.Len(t, filter, present+1, "mask %b role %s", mask, role)
			assert.Equal(t, role.IsTutor(), filter["isTutor"])
		}
	}
}

func TestQueryParams(t *testing.T) {
	q := url.Values{
		"state": {"NY", "CA"},
		"day":   {"Mon"},
		"empty": {},
	}

	assert.Equal(t, map[string]string{"state": "NY", "day": "Mon"}, QueryParams(q))
	assert.Empty(t, QueryParams(nil))
}
