// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// MembersPage is the member listing returned by the remote authority
type MembersPage struct {
	Members []TeamMember `json:"members"`
	Total   int          `json:"total"`
}

// PermissionGrant is a role with the permission identifiers the remote authority resolved for it.
// Identifiers are kept raw, unknown ones are dropped by the consumer.
type PermissionGrant struct {
	Role        Role     `json:"role"`
	Permissions []string `json:"permissions"`
}
