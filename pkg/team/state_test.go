// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"
	"time"

	"github.com/canonical/merchant-team-service/internal/types"
)

func member(id string, role types.Role, status types.Status) types.TeamMember {
	return types.TeamMember{
		ID:        id,
		Name:      "Member " + id,
		Email:     id + "@example.com",
		Role:      role,
		Status:    status,
		InvitedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func ids(members []types.TeamMember) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.ID)
	}
	return out
}

// checkConsistent fails when the ordered list and the index disagree
func checkConsistent(t *testing.T, s State) {
	t.Helper()

	if len(s.members) != len(s.membersByID) {
		t.Fatalf("members has %d entries, index has %d", len(s.members), len(s.membersByID))
	}

	for _, m := range s.members {
		indexed, ok := s.membersByID[m.ID]
		if !ok {
			t.Fatalf("member %s missing from index", m.ID)
		}
		if !reflect.DeepEqual(indexed, m) {
			t.Fatalf("member %s differs from index: %+v != %+v", m.ID, m, indexed)
		}
	}

	if s.TotalMembers() != len(s.members) {
		t.Fatalf("expected total %d, got %d", len(s.members), s.TotalMembers())
	}
}

func TestApplyUpsert(t *testing.T) {
	tests := []struct {
		name     string
		initial  []types.TeamMember
		upsert   types.TeamMember
		expected []string
		role     types.Role
	}{
		{
			name:     "insert into empty state",
			upsert:   member("u1", types.RoleStaff, types.StatusActive),
			expected: []string{"u1"},
			role:     types.RoleStaff,
		},
		{
			name: "insert appends",
			initial: []types.TeamMember{
				member("u1", types.RoleStaff, types.StatusActive),
				member("u2", types.RoleStaff, types.StatusActive),
			},
			upsert:   member("u3", types.RoleManager, types.StatusActive),
			expected: []string{"u1", "u2", "u3"},
			role:     types.RoleManager,
		},
		{
			name: "replace keeps position",
			initial: []types.TeamMember{
				member("u1", types.RoleStaff, types.StatusActive),
				member("u2", types.RoleStaff, types.StatusActive),
				member("u3", types.RoleStaff, types.StatusActive),
			},
			upsert:   member("u2", types.RoleAdmin, types.StatusSuspended),
			expected: []string{"u1", "u2", "u3"},
			role:     types.RoleAdmin,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			before := NewState(test.initial...)
			snapshot := before.Members()

			after := Apply(before, MemberUpserted{Member: test.upsert})

			checkConsistent(t, after)

			if got := ids(after.Members()); !slices.Equal(got, test.expected) {
				t.Errorf("expected order %v, got %v", test.expected, got)
			}

			m, ok := after.Member(test.upsert.ID)
			if !ok || m.Role != test.role {
				t.Errorf("expected %s with role %s, got %+v", test.upsert.ID, test.role, m)
			}

			if !reflect.DeepEqual(before.Members(), snapshot) {
				t.Errorf("previous state was modified")
			}

			if after.Version() <= before.Version() {
				t.Errorf("expected version to increase from %d, got %d", before.Version(), after.Version())
			}
		})
	}
}

func TestApplyNoopOnAbsent(t *testing.T) {
	initial := NewState(member("u1", types.RoleStaff, types.StatusActive))

	tests := []struct {
		name  string
		event Event
	}{
		{
			name:  "delete",
			event: MemberDeleted{ID: "ghost"},
		},
		{
			name:  "patch role",
			event: MemberPatched{ID: "ghost", Patch: types.RolePatch(types.RoleAdmin)},
		},
		{
			name:  "patch status",
			event: MemberPatched{ID: "ghost", Patch: types.StatusPatch(types.StatusSuspended)},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			after := Apply(initial, test.event)

			if after.Version() != initial.Version() {
				t.Errorf("expected unchanged version %d, got %d", initial.Version(), after.Version())
			}

			if after.TotalMembers() != 1 {
				t.Errorf("expected total 1, got %d", after.TotalMembers())
			}

			if after.Has("ghost") {
				t.Errorf("absent member was resurrected")
			}

			checkConsistent(t, after)
		})
	}
}

func TestApplyDelete(t *testing.T) {
	s := NewState(
		member("u1", types.RoleStaff, types.StatusActive),
		member("u2", types.RoleStaff, types.StatusActive),
		member("u3", types.RoleStaff, types.StatusActive),
	)

	s = Apply(s, MemberDeleted{ID: "u2"})
	checkConsistent(t, s)

	if got := ids(s.Members()); !slices.Equal(got, []string{"u1", "u3"}) {
		t.Errorf("unexpected members %v", got)
	}

	s = Apply(s, MemberDeleted{ID: "u2"})
	if s.TotalMembers() != 2 {
		t.Errorf("expected a second delete to be ignored, total is %d", s.TotalMembers())
	}
}

func TestApplyPatch(t *testing.T) {
	s := NewState(member("u1", types.RoleManager, types.StatusActive))

	s = Apply(s, MemberPatched{ID: "u1", Patch: types.RolePatch(types.RoleAdmin)})
	s = Apply(s, MemberPatched{ID: "u1", Patch: types.StatusPatch(types.StatusSuspended)})
	checkConsistent(t, s)

	m, _ := s.Member("u1")
	if m.Role != types.RoleAdmin || m.Status != types.StatusSuspended {
		t.Errorf("unexpected member %+v", m)
	}

	if m.Name != "Member u1" || m.Email != "u1@example.com" {
		t.Errorf("patch touched unrelated fields: %+v", m)
	}
}

func TestApplyReplace(t *testing.T) {
	s := NewState(member("temp-1", types.RoleStaff, types.StatusInactive))

	s = Apply(s, MembersReplaced{
		Members: []types.TeamMember{
			member("u1", types.RoleOwner, types.StatusActive),
			member("u2", types.RoleStaff, types.StatusActive),
			member("u1", types.RoleOwner, types.StatusSuspended),
		},
		Total: 40,
	})
	checkConsistent(t, s)

	if got := ids(s.Members()); !slices.Equal(got, []string{"u1", "u2"}) {
		t.Errorf("unexpected members %v", got)
	}

	if m, _ := s.Member("u1"); m.Status != types.StatusSuspended {
		t.Errorf("expected the last duplicate to win, got %+v", m)
	}

	if s.TotalMembers() != 2 {
		t.Errorf("expected total 2, got %d", s.TotalMembers())
	}

	if s.ServerTotal() != 40 {
		t.Errorf("expected server total 40, got %d", s.ServerTotal())
	}
}

func TestMembersReturnsCopy(t *testing.T) {
	s := NewState(member("u1", types.RoleStaff, types.StatusActive))

	members := s.Members()
	members[0].Role = types.RoleOwner

	if m, _ := s.Member("u1"); m.Role != types.RoleStaff {
		t.Errorf("state was modified through Members()")
	}
	checkConsistent(t, s)
}

func TestApplyUnknownEventPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic on an unknown event")
		}
	}()

	Apply(NewState(), nil)
}

// random transitions never break the correspondence between list and index
func TestApplyKeepsIndexConsistent(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	idPool := []string{"a", "b", "c", "d", "e"}
	roles := types.Roles
	statuses := []types.Status{types.StatusInactive, types.StatusActive, types.StatusSuspended}

	s := NewState()
	for i := 0; i < 2000; i++ {
		id := idPool[r.IntN(len(idPool))]

		var e Event
		switch r.IntN(4) {
		case 0:
			e = MemberUpserted{Member: member(id, roles[r.IntN(len(roles))], statuses[r.IntN(len(statuses))])}
		case 1:
			e = MemberDeleted{ID: id}
		case 2:
			e = MemberPatched{ID: id, Patch: types.RolePatch(roles[r.IntN(len(roles))])}
		case 3:
			e = MemberPatched{ID: id, Patch: types.StatusPatch(statuses[r.IntN(len(statuses))])}
		}

		s = Apply(s, e)
		checkConsistent(t, s)
	}
}
