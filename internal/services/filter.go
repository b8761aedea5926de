package services

import (
	"net/url"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/harentsoaR/tutormatch-api/internal/models"
)

// Search parameters recognized by BuildFilter.
const (
	ParamState   = "state"
	ParamCountry = "country"
	ParamCity    = "city"
	ParamArea    = "area"
	ParamPref    = "pref"
	ParamDay     = "day"
)

var locationParams = []struct {
	param string
	field string
}{
	{ParamState, "location.state"},
	{ParamCountry, "location.country"},
	{ParamCity, "location.city"},
	{ParamArea, "location.area"},
}

// BuildFilter turns optional search parameters into a user predicate for
// the given audience. The predicate always pins isTutor; every recognized,
// non-empty parameter adds exactly one clause and unknown keys are ignored.
//
// The pref clause compares tutor preferences as raw strings but tutee
// preferences as ObjectIDs, so a tutee pref that is not a valid hex id is
// treated as absent.
func BuildFilter(role models.Role, params map[string]string) bson.M {
	filter := bson.M{"isTutor": role.IsTutor()}

	for _, lp := range locationParams {
		if v := params[lp.param]; v != "" {
			filter[lp.field] = v
		}
	}

	if v := params[ParamPref]; v != "" {
		if ref, ok := prefRef(role, v); ok {
			filter[role.Field("pref")] = bson.M{"$in": bson.A{ref}}
		}
	}

	if v := params[ParamDay]; v != "" {
		filter[role.Field("availability")] = bson.M{"$elemMatch": bson.M{"day": v}}
	}

	return filter
}

func prefRef(role models.Role, v string) (any, bool) {
	if role == models.RoleTutor {
		return v, true
	}
	id, err := primitive.ObjectIDFromHex(v)
	if err != nil {
		return nil, false
	}
	return id, true
}

// QueryParams flattens a query string, keeping the first value of each key.
func QueryParams(q url.Values) map[string]string {
	params := make(map[string]string, len(q))
	for k, vs := range q {
		if len(vs) > 0 {
			params[k] = vs[0]
		}
	}
	return params
}
