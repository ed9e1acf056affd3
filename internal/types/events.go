// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// MemberEvent is a change pushed by the remote authority about an action taken by another actor.
// The set is closed: MemberUpdated, MemberRemoved and MemberInvited.
type MemberEvent interface {
	EventType() string

	memberEvent()
}

const (
	EventMemberUpdated = "member-updated"
	EventMemberRemoved = "member-removed"
	EventMemberInvited = "member-invited"
)

type MemberUpdated struct {
	Member TeamMember
}

type MemberRemoved struct {
	ID string
}

type MemberInvited struct {
	Member TeamMember
}

func (MemberUpdated) EventType() string { return EventMemberUpdated }
func (MemberRemoved) EventType() string { return EventMemberRemoved }
func (MemberInvited) EventType() string { return EventMemberInvited }

func (MemberUpdated) memberEvent() {}
func (MemberRemoved) memberEvent() {}
func (MemberInvited) memberEvent() {}
