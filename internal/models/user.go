package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UID          string             `bson:"uid" json:"uid" binding:"required"` // external unique key
	IsTutor      bool               `bson:"isTutor" json:"isTutor"`
	Name         string             `bson:"name,omitempty" json:"name,omitempty"`
	Email        string             `bson:"email,omitempty" json:"email,omitempty"`
	Location     *Location          `bson:"location,omitempty" json:"location,omitempty"`
	Pref         *Preferences       `bson:"pref,omitempty" json:"pref,omitempty"`
	Availability *Availability      `bson:"availability,omitempty" json:"availability,omitempty"`
	Rating       *Rating            `bson:"rating,omitempty" json:"rating,omitempty"`

	// Exists is only set on responses, when registration found the uid already taken.
	Exists bool `bson:"-" json:"exists,omitempty"`

	// Extra holds profile attributes without a field of their own.
	Extra bson.M `bson:",inline" json:"-"`
}

var userKeys = jsonKeys(User{})

func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return marshalWithExtra(plain(u), u.Extra)
}

func (u *User) UnmarshalJSON(b []byte) error {
	type plain User
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	extra, err := extraAttrs(b, userKeys)
	if err != nil {
		return err
	}
	p.Extra = extra
	*u = User(p)
	return nil
}

type Location struct {
	Country string `bson:"country,omitempty" json:"country,omitempty"`
	State   string `bson:"state,omitempty" json:"state,omitempty"`
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	Area    string `bson:"area,omitempty" json:"area,omitempty"`
}

// Preferences holds category references per role.
type Preferences struct {
	Tutor []string `bson:"tutor,omitempty" json:"tutor,omitempty"`
	Tutee []string `bson:"tutee,omitempty" json:"tutee,omitempty"`
}

// For returns the references stored for role. A nil receiver has none.
func (p *Preferences) For(role Role) []string {
	if p == nil {
		return nil
	}
	if role == RoleTutor {
		return p.Tutor
	}
	return p.Tutee
}

type Availability struct {
	Tutor []Slot `bson:"tutor,omitempty" json:"tutor,omitempty"`
	Tutee []Slot `bson:"tutee,omitempty" json:"tutee,omitempty"`
}

// Slot is one available time window on a given day.
type Slot struct {
	Day   string `bson:"day" json:"day" binding:"required"`
	Start string `bson:"start,omitempty" json:"start,omitempty"`
	End   string `bson:"end,omitempty" json:"end,omitempty"`
}

// Rating holds a per-role score. A score is usually a number but may be an
// aggregate document such as {avg, count}.
type Rating struct {
	Tutor any `bson:"tutor,omitempty" json:"tutor,omitempty"`
	Tutee any `bson:"tutee,omitempty" json:"tutee,omitempty"`
}

func (r Rating) MarshalJSON() ([]byte, error) {
	type plain Rating
	return json.Marshal(plain{Tutor: jsonValue(r.Tutor), Tutee: jsonValue(r.Tutee)})
}
