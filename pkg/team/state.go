// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"fmt"
	"maps"
	"slices"

	"github.com/canonical/merchant-team-service/internal/types"
)

// State is an immutable snapshot of the team cache.
// members keeps presentation order, membersByID mirrors it exactly.
type State struct {
	members     []types.TeamMember
	membersByID map[string]types.TeamMember
	serverTotal int
	version     uint64
}

func NewState(members ...types.TeamMember) State {
	return Apply(State{}, MembersReplaced{Members: members, Total: len(members)})
}

// Members returns a copy in presentation order
func (s State) Members() []types.TeamMember {
	return slices.Clone(s.members)
}

func (s State) Member(id string) (types.TeamMember, bool) {
	m, ok := s.membersByID[id]
	return m, ok
}

func (s State) Has(id string) bool {
	_, ok := s.membersByID[id]
	return ok
}

// TotalMembers is the number of distinct members held
func (s State) TotalMembers() int {
	return len(s.membersByID)
}

// ServerTotal is the total reported by the last listing, it may exceed TotalMembers when the listing is paginated
func (s State) ServerTotal() int {
	return s.serverTotal
}

// Version increases on every transition that changed the state
func (s State) Version() uint64 {
	return s.version
}

// Event is a store transition. The set is closed to the types below.
type Event interface {
	storeEvent()
}

// MemberUpserted inserts a member at the end or replaces it in place
type MemberUpserted struct {
	Member types.TeamMember
}

// MemberDeleted removes a member, absent ids are ignored
type MemberDeleted struct {
	ID string
}

// MemberPatched merges fields into an existing member, absent ids are ignored
type MemberPatched struct {
	ID    string
	Patch types.MemberPatch
}

// MembersReplaced swaps the content for a fresh listing
type MembersReplaced struct {
	Members []types.TeamMember
	Total   int
}

func (MemberUpserted) storeEvent()  {}
func (MemberDeleted) storeEvent()   {}
func (MemberPatched) storeEvent()   {}
func (MembersReplaced) storeEvent() {}

// Apply returns the state resulting from e. The input is never modified,
// a state that changed never shares collections with its predecessor.
func Apply(s State, e Event) State {
	switch e := e.(type) {
	case MemberUpserted:
		return s.upsert(e.Member)
	case MemberDeleted:
		return s.remove(e.ID)
	case MemberPatched:
		return s.patch(e.ID, e.Patch)
	case MembersReplaced:
		return s.replace(e.Members, e.Total)
	default:
		panic(fmt.Sprintf("team: unhandled store event %T", e))
	}
}

func (s State) upsert(m types.TeamMember) State {
	next := s.clone()

	if _, ok := s.membersByID[m.ID]; ok {
		i := slices.IndexFunc(next.members, func(x types.TeamMember) bool { return x.ID == m.ID })
		next.members[i] = m
	} else {
		next.members = append(next.members, m)
	}
	next.membersByID[m.ID] = m

	return next.bump()
}

func (s State) remove(id string) State {
	if !s.Has(id) {
		return s
	}

	next := s.clone()
	next.members = slices.DeleteFunc(next.members, func(x types.TeamMember) bool { return x.ID == id })
	delete(next.membersByID, id)

	return next.bump()
}

func (s State) patch(id string, p types.MemberPatch) State {
	m, ok := s.membersByID[id]
	if !ok {
		return s
	}
	return s.upsert(p.Apply(m))
}

func (s State) replace(members []types.TeamMember, total int) State {
	next := State{
		members:     make([]types.TeamMember, 0, len(members)),
		membersByID: make(map[string]types.TeamMember, len(members)),
		serverTotal: total,
		version:     s.version,
	}

	for _, m := range members {
		if _, ok := next.membersByID[m.ID]; ok {
			i := slices.IndexFunc(next.members, func(x types.TeamMember) bool { return x.ID == m.ID })
			next.members[i] = m
		} else {
			next.members = append(next.members, m)
		}
		next.membersByID[m.ID] = m
	}

	return next.bump()
}

func (s State) clone() State {
	next := s
	next.members = slices.Clone(s.members)
	next.membersByID = maps.Clone(s.membersByID)
	if next.membersByID == nil {
		next.membersByID = make(map[string]types.TeamMember)
	}
	return next
}

func (s State) bump() State {
	s.version++
	return s
}
