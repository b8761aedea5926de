package models

import "fmt"

// Role selects which side of a user profile an operation works on.
type Role string

const (
	RoleTutor Role = "tutor"
	RoleTutee Role = "tutee"
)

// IsTutor is the value of the user's isTutor flag for this role.
func (r Role) IsTutor() bool {
	return r == RoleTutor
}

// Field returns the dotted path of a per-role sub-document field, e.g. "pref.tutor".
func (r Role) Field(parent string) string {
	return fmt.Sprintf("%s.%s", parent, r)
}
