// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authorization holds the client side permission catalog and role map.
// Results only drive which team mutations are offered and attempted, the remote
// authority validates every mutation again.
package authorization

import (
	"github.com/canonical/merchant-team-service/internal/types"
)

func HasPermission(role types.Role, permission Permission) bool {
	return PermissionsFor(role).Has(permission)
}

func HasAny(role types.Role, permissions ...Permission) bool {
	return PermissionsFor(role).HasAny(permissions...)
}

func HasAll(role types.Role, permissions ...Permission) bool {
	return PermissionsFor(role).HasAll(permissions...)
}

// CanEditMember reports whether acting may change a member holding target.
// Only strictly lower roles can be edited, owners never.
func CanEditMember(acting, target types.Role) bool {
	if !acting.Valid() || !target.Valid() || target == types.RoleOwner {
		return false
	}
	return acting.Rank() > target.Rank()
}
