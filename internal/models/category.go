package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is a subject users state preferences for. Only the id is
// interpreted; name, description and any other attribute are kept as stored.
type Category struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Attrs bson.M             `bson:",inline" json:"-"`
}

var categoryKeys = jsonKeys(Category{})

func (c Category) MarshalJSON() ([]byte, error) {
	type plain Category
	return marshalWithExtra(plain(c), c.Attrs)
}

func (c *Category) UnmarshalJSON(b []byte) error {
	type plain Category
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	attrs, err := extraAttrs(b, categoryKeys)
	if err != nil {
		return err
	}
	p.Attrs = attrs
	*c = Category(p)
	return nil
}
