package models

import (
	"encoding/json"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// jsonKeys lists the JSON names of the fields of struct value v.
func jsonKeys(v any) map[string]bool {
	t := reflect.TypeOf(v)
	keys := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		keys[name] = true
	}
	return keys
}

// marshalWithExtra encodes v and adds the extra attributes that v does not
// already carry.
func marshalWithExtra(v any, extra bson.M) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil || len(extra) == 0 {
		return b, err
	}

	fields := make(map[string]json.RawMessage, len(extra))
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	for k, x := range extra {
		if _, ok := fields[k]; ok {
			continue
		}
		raw, err := json.Marshal(jsonValue(x))
		if err != nil {
			return nil, err
		}
		fields[k] = raw
	}
	return json.Marshal(fields)
}

// extraAttrs returns the members of the JSON object b whose names are not
// in known, or nil when there are none.
func extraAttrs(b []byte, known map[string]bool) (bson.M, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}

	var extra bson.M
	for k, raw := range fields {
		if known[k] {
			continue
		}
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, err
		}
		if extra == nil {
			extra = bson.M{}
		}
		extra[k] = v
	}
	return extra, nil
}

// jsonValue turns decoded BSON documents and arrays into plain maps and
// slices so they encode as JSON objects and arrays.
func jsonValue(v any) any {
	switch t := v.(type) {
	case primitive.D:
		m := make(map[string]any, len(t))
		for _, e := range t {
			m[e.Key] = jsonValue(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]any, len(t))
		for k, x := range t {
			m[k] = jsonValue(x)
		}
		return m
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, x := range t {
			m[k] = jsonValue(x)
		}
		return m
	case primitive.A:
		s := make([]any, len(t))
		for i, x := range t {
			s[i] = jsonValue(x)
		}
		return s
	case []any:
		s := make([]any, len(t))
		for i, x := range t {
			s[i] = jsonValue(x)
		}
		return s
	default:
		return v
	}
}
