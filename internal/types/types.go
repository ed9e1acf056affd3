// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrUnknownRole   = errors.New("unknown role")
	ErrUnknownStatus = errors.New("unknown status")
)

type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// Roles lists every role from the most to the least privileged
var Roles = []Role{RoleOwner, RoleAdmin, RoleManager, RoleStaff}

// Rank orders roles, a higher rank outranks a lower one. Unknown roles rank 0.
func (r Role) Rank() int {
	switch r {
	case RoleOwner:
		return 4
	case RoleAdmin:
		return 3
	case RoleManager:
		return 2
	case RoleStaff:
		return 1
	}
	return 0
}

func (r Role) Valid() bool {
	return r.Rank() > 0
}

// Assignable reports whether the role can be set through invites or role changes.
// Ownership is never handed out that way.
func (r Role) Assignable() bool {
	return r.Valid() && r != RoleOwner
}

func (r Role) String() string {
	return string(r)
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownRole)
	}
	return r, nil
}

type Status string

const (
	// StatusInactive is an invited member who has not accepted yet
	StatusInactive  Status = "inactive"
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

func (s Status) Valid() bool {
	switch s {
	case StatusInactive, StatusActive, StatusSuspended:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownStatus)
	}
	return st, nil
}

type TeamMember struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Status    Status    `json:"status"`
	InvitedAt time.Time `json:"invitedAt"`
}

// MemberPatch carries the fields to merge into an existing member, nil fields are left untouched
type MemberPatch struct {
	Name   *string
	Email  *string
	Role   *Role
	Status *Status
}

func (p MemberPatch) Apply(m TeamMember) TeamMember {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Email != nil {
		m.Email = *p.Email
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	return m
}

func RolePatch(r Role) MemberPatch {
	return MemberPatch{Role: &r}
}

func StatusPatch(s Status) MemberPatch {
	return MemberPatch{Status: &s}
}
