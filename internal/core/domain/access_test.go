package domain

import "testing"

func TestScopeFor(t *testing.T) {
	cases := []struct {
		name   string
		claims Claims
		want   Scope
	}{
		{
			name:   "student sees own records only",
			claims: Claims{UserID: "u1", Role: RoleStudent, ClubID: "c1"},
			want:   Scope{SubmitterID: "u1"},
		},
		{
			name:   "club admin sees own club",
			claims: Claims{UserID: "u2", Role: RoleClubAdmin, ClubID: "c1"},
			want:   Scope{ClubID: "c1"},
		},
		{
			name:   "school admin unrestricted",
			claims: Claims{UserID: "u3", Role: RoleSchoolAdmin},
			want:   Scope{},
		},
		{
			name:   "admin unrestricted",
			claims: Claims{UserID: "u4", Role: RoleAdmin},
			want:   Scope{},
		},
		{
			name:   "unknown role denied",
			claims: Claims{UserID: "u5", Role: Role("auditor")},
			want:   Scope{DenyAll: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ScopeFor(tc.claims); got != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestScopeAllowsWorkHour(t *testing.T) {
	record := &WorkHour{SubmitterID: "u1", ClubID: "c1"}

	if !(Scope{}).AllowsWorkHour(record) {
		t.Error("unrestricted scope must allow any record")
	}
	if !(Scope{SubmitterID: "u1"}).AllowsWorkHour(record) {
		t.Error("submitter scope must allow own record")
	}
	if (Scope{SubmitterID: "u2"}).AllowsWorkHour(record) {
		t.Error("submitter scope must not allow another user's record")
	}
	if !(Scope{ClubID: "c1"}).AllowsWorkHour(record) {
		t.Error("club scope must allow same-club record")
	}
	if (Scope{ClubID: "c2"}).AllowsWorkHour(record) {
		t.Error("club scope must not allow another club's record")
	}
	if (Scope{DenyAll: true}).AllowsWorkHour(record) {
		t.Error("deny-all scope must allow nothing")
	}
}

func TestScopeAllowsActivity(t *testing.T) {
	activity := &Activity{OrganizerID: "u1", ClubID: "c1"}

	if !(Scope{SubmitterID: "u1"}).AllowsActivity(activity) {
		t.Error("organizer must see own activity")
	}
	if (Scope{SubmitterID: "u2"}).AllowsActivity(activity) {
		t.Error("another student must not see the activity")
	}
	if !(Scope{ClubID: "c1"}).AllowsActivity(activity) {
		t.Error("club scope must allow same-club activity")
	}
	if (Scope{DenyAll: true}).AllowsActivity(activity) {
		t.Error("deny-all scope must allow nothing")
	}
}

func TestCanDecideClub(t *testing.T) {
	if !(Claims{Role: RoleAdmin}).CanDecideClub("c1") {
		t.Error("admin must decide for any club")
	}
	if !(Claims{Role: RoleSchoolAdmin}).CanDecideClub("c1") {
		t.Error("school admin must decide for any club")
	}
	if !(Claims{Role: RoleClubAdmin, ClubID: "c1"}).CanDecideClub("c1") {
		t.Error("club admin must decide for own club")
	}
	if (Claims{Role: RoleClubAdmin, ClubID: "c1"}).CanDecideClub("c2") {
		t.Error("club admin must not decide for another club")
	}
	if (Claims{Role: RoleClubAdmin}).CanDecideClub("") {
		t.Error("club admin without a club must not decide")
	}
	if (Claims{Role: RoleStudent, ClubID: "c1"}).CanDecideClub("c1") {
		t.Error("student must not decide")
	}
}

func TestCanCancelActivity(t *testing.T) {
	activity := &Activity{OrganizerID: "u1", ClubID: "c1"}

	if !(Claims{UserID: "u1", Role: RoleStudent}).CanCancelActivity(activity) {
		t.Error("organizer must cancel own activity")
	}
	if (Claims{UserID: "u2", Role: RoleStudent}).CanCancelActivity(activity) {
		t.Error("unrelated student must not cancel")
	}
	if !(Claims{UserID: "u3", Role: RoleClubAdmin, ClubID: "c1"}).CanCancelActivity(activity) {
		t.Error("club admin of the club must cancel")
	}
	if (Claims{UserID: "u3", Role: RoleClubAdmin, ClubID: "c2"}).CanCancelActivity(activity) {
		t.Error("club admin of another club must not cancel")
	}
	if !(Claims{UserID: "u4", Role: RoleSchoolAdmin}).CanCancelActivity(activity) {
		t.Error("school admin must cancel any activity")
	}
}
