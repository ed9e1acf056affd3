// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"slices"

	"github.com/canonical/merchant-team-service/internal/types"
)

var roleMap = map[types.Role]PermissionSet{
	types.RoleOwner: NewPermissionSet(catalog...),
	types.RoleAdmin: NewPermissionSet(
		slices.DeleteFunc(All(), func(p Permission) bool {
			return p == BillingManage || p == SettingsDelete
		})...,
	),
	types.RoleManager: NewPermissionSet(
		TeamView,
		EventsView, EventsCreate, EventsEdit, EventsPublish,
		OrdersView, OrdersManage, OrdersExport,
		BookingsView, BookingsManage, BookingsCheckIn,
		ProductsView, ProductsCreate, ProductsEdit,
		NotificationsView, NotificationsSend,
		AnalyticsView,
		SettingsView,
	),
	types.RoleStaff: NewPermissionSet(
		EventsView,
		OrdersView,
		BookingsView, BookingsCheckIn,
		ProductsView,
		NotificationsView,
	),
}

// PermissionsFor returns the permissions granted to the role, empty for unknown roles
func PermissionsFor(role types.Role) PermissionSet {
	if s, ok := roleMap[role]; ok {
		return s
	}
	return NewPermissionSet()
}
