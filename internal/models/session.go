package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session is a booked tutoring session. TutorID and TuteeID hold the
// participants' external keys as plain strings, not ObjectIDs. The rest of
// the payload (day, time, subject, price, ...) is free-form and kept in Extra.
type Session struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TutorID string             `bson:"tutor_id" json:"tutor_id"`
	TuteeID string             `bson:"tutee_id" json:"tutee_id"`
	Extra   bson.M             `bson:",inline" json:"-"`
}

var sessionKeys = jsonKeys(Session{})

func (s Session) MarshalJSON() ([]byte, error) {
	type plain Session
	return marshalWithExtra(plain(s), s.Extra)
}

func (s *Session) UnmarshalJSON(b []byte) error {
	type plain Session
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	extra, err := extraAttrs(b, sessionKeys)
	if err != nil {
		return err
	}
	p.Extra = extra
	*s = Session(p)
	return nil
}
