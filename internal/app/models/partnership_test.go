package models

import "testing"

func TestPairKeyIsOrderIndependent(t *testing.T) {
	if PairKey(3, 7) != PairKey(7, 3) {
		t.Errorf("PairKey(3,7) = %q, PairKey(7,3) = %q; want equal", PairKey(3, 7), PairKey(7, 3))
	}
	if got := PairKey(3, 7); got != "3:7" {
		t.Errorf("PairKey(3,7) = %q, want 3:7", got)
	}
	if got := PairKey(42, 42); got != "42:42" {
		t.Errorf("PairKey(42,42) = %q, want 42:42", got)
	}
}

func TestRoleValid(t *testing.T) {
	for _, role := range []Role{RoleStudent, RoleCompany, RoleCollege, RoleCollegeMember, RoleAdmin} {
		if !role.Valid() {
			t.Errorf("Valid(%q) = false, want true", role)
		}
	}
	if Role("intern").Valid() {
		t.Error(`Valid("intern") = true, want false`)
	}
}

func TestEffectiveCollegeID(t *testing.T) {
	parent := int64(5)

	college := &User{ID: 5, Role: RoleCollege}
	if got := college.EffectiveCollegeID(); got != 5 {
		t.Errorf("college scope = %d, want 5", got)
	}

	student := &User{ID: 9, Role: RoleStudent, CollegeID: &parent}
	if got := student.EffectiveCollegeID(); got != 5 {
		t.Errorf("student scope = %d, want 5", got)
	}

	company := &User{ID: 3, Role: RoleCompany}
	if got := company.EffectiveCollegeID(); got != 0 {
		t.Errorf("company scope = %d, want 0", got)
	}
}
