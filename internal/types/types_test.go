// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"testing"
)

func TestRoleRank(t *testing.T) {
	for i := 1; i < len(Roles); i++ {
		if Roles[i-1].Rank() <= Roles[i].Rank() {
			t.Errorf("expected %s to outrank %s", Roles[i-1], Roles[i])
		}
	}
	if Role("guest").Rank() != 0 {
		t.Error("expected unknown role to rank 0")
	}
}

func TestRoleAssignable(t *testing.T) {
	testCases := []struct {
		role     Role
		expected bool
	}{
		{RoleOwner, false},
		{RoleAdmin, true},
		{RoleManager, true},
		{RoleStaff, true},
		{Role("guest"), false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role), func(t *testing.T) {
			if got := tc.role.Assignable(); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole("manager"); err != nil || r != RoleManager {
		t.Errorf("expected manager, got %q (%v)", r, err)
	}
	if _, err := ParseRole("superuser"); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("expected ErrUnknownRole, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus("suspended"); err != nil || s != StatusSuspended {
		t.Errorf("expected suspended, got %q (%v)", s, err)
	}
	if _, err := ParseStatus("deleted"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("expected ErrUnknownStatus, got %v", err)
	}
}

func TestMemberPatchApply(t *testing.T) {
	m := TeamMember{ID: "u1", Name: "Jane", Email: "jane@x.com", Role: RoleStaff, Status: StatusActive}

	patched := RolePatch(RoleManager).Apply(m)
	if patched.Role != RoleManager {
		t.Errorf("expected role manager, got %s", patched.Role)
	}
	if patched.Status != StatusActive || patched.Name != "Jane" {
		t.Error("expected untouched fields to be preserved")
	}
	if m.Role != RoleStaff {
		t.Error("expected the original member to be left unchanged")
	}

	patched = StatusPatch(StatusSuspended).Apply(m)
	if patched.Status != StatusSuspended || patched.Role != RoleStaff {
		t.Errorf("unexpected patch result %+v", patched)
	}
}
