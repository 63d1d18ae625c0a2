package domain

import "time"

// Role is the closed set of actor roles. Anything outside this set is
// treated as unknown and gets no visibility (deny by default).
type Role string

const (
	RoleAdmin       Role = "admin"
	RoleSchoolAdmin Role = "school-admin"
	RoleClubAdmin   Role = "club-admin"
	RoleStudent     Role = "student"
)

// ParseRole maps a raw string to a Role, reporting whether it is one of
// the known values.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleSchoolAdmin, RoleClubAdmin, RoleStudent:
		return Role(s), true
	}
	return "", false
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

// CanDecide reports whether the role may approve or reject submissions at
// all. Club-admins are additionally restricted to their own club; see
// Claims.CanDecideClub.
func (r Role) CanDecide() bool {
	return r == RoleAdmin || r == RoleSchoolAdmin || r == RoleClubAdmin
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Name         string    `json:"name,omitempty"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	ClubID       string    `json:"club_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Club is reference data owned by the credential store. AdminID points at
// the single designated club-admin user, when one exists.
type Club struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Name           string    `json:"name" bson:"name"`
	Description    string    `json:"description" bson:"description"`
	AdminID        string    `json:"admin_id,omitempty" bson:"admin_id,omitempty"`
	Category       string    `json:"category,omitempty" bson:"category,omitempty"`
	MaxMembers     int       `json:"max_members,omitempty" bson:"max_members,omitempty"`
	CurrentMembers int       `json:"current_members" bson:"current_members"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
