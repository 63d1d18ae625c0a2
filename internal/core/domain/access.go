package domain

// Claims is the identity payload decoded from a session token.
type Claims struct {
	UserID   string
	Username string
	Role     Role
	ClubID   string
}

// Scope narrows which records a caller may see. It is a pure value derived
// from claims; repositories translate it into query filters and services
// apply it before any mutation.
type Scope struct {
	// SubmitterID, when non-empty, restricts visibility to records submitted
	// or organized by this user.
	SubmitterID string
	// ClubID, when non-empty, restricts visibility to records of this club.
	ClubID string
	// DenyAll is set for unknown roles: nothing is visible, nothing mutable.
	DenyAll bool
}

// ScopeFor derives the access scope for a caller. Unknown roles get a
// deny-all scope rather than the implicit pass-through the role strings
// would otherwise allow.
func ScopeFor(c Claims) Scope {
	switch c.Role {
	case RoleStudent:
		return Scope{SubmitterID: c.UserID}
	case RoleClubAdmin:
		return Scope{ClubID: c.ClubID}
	case RoleSchoolAdmin, RoleAdmin:
		return Scope{}
	default:
		return Scope{DenyAll: true}
	}
}

// Unrestricted reports whether the scope imposes no filtering.
func (s Scope) Unrestricted() bool {
	return !s.DenyAll && s.SubmitterID == "" && s.ClubID == ""
}

// AllowsWorkHour reports whether a single work-hour record falls inside the
// scope.
func (s Scope) AllowsWorkHour(w *WorkHour) bool {
	if s.DenyAll {
		return false
	}
	if s.SubmitterID != "" && w.SubmitterID != s.SubmitterID {
		return false
	}
	if s.ClubID != "" && w.ClubID != s.ClubID {
		return false
	}
	return true
}

// AllowsActivity reports whether a single activity record falls inside the
// scope. For students the organizer reference plays the submitter role.
func (s Scope) AllowsActivity(a *Activity) bool {
	if s.DenyAll {
		return false
	}
	if s.SubmitterID != "" && a.OrganizerID != s.SubmitterID {
		return false
	}
	if s.ClubID != "" && a.ClubID != s.ClubID {
		return false
	}
	return true
}

// CanDecideClub reports whether the caller may approve or reject records
// belonging to the given club. Club-admins decide only for their own club;
// school-admins and admins decide for any club.
func (c Claims) CanDecideClub(clubID string) bool {
	switch c.Role {
	case RoleAdmin, RoleSchoolAdmin:
		return true
	case RoleClubAdmin:
		return c.ClubID != "" && c.ClubID == clubID
	default:
		return false
	}
}

// CanCancelActivity reports whether the caller may cancel the activity:
// the organizer who submitted it, or anyone who could decide on it.
func (c Claims) CanCancelActivity(a *Activity) bool {
	if c.UserID != "" && c.UserID == a.OrganizerID {
		return true
	}
	return c.CanDecideClub(a.ClubID)
}
