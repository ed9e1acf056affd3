// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var ErrUnknownPermission = errors.New("unknown permission")

// Permission is a category:action identifier from the fixed catalog below
type Permission string

const (
	TeamView        Permission = "team:view"
	TeamInvite      Permission = "team:invite"
	TeamEdit        Permission = "team:edit"
	TeamManageRoles Permission = "team:manage_roles"
	TeamRemove      Permission = "team:remove"

	EventsView    Permission = "events:view"
	EventsCreate  Permission = "events:create"
	EventsEdit    Permission = "events:edit"
	EventsDelete  Permission = "events:delete"
	EventsPublish Permission = "events:publish"

	OrdersView   Permission = "orders:view"
	OrdersManage Permission = "orders:manage"
	OrdersRefund Permission = "orders:refund"
	OrdersExport Permission = "orders:export"

	BookingsView    Permission = "bookings:view"
	BookingsManage  Permission = "bookings:manage"
	BookingsCheckIn Permission = "bookings:check_in"

	ProductsView   Permission = "products:view"
	ProductsCreate Permission = "products:create"
	ProductsEdit   Permission = "products:edit"
	ProductsDelete Permission = "products:delete"

	NotificationsView Permission = "notifications:view"
	NotificationsSend Permission = "notifications:send"

	AnalyticsView   Permission = "analytics:view"
	AnalyticsExport Permission = "analytics:export"

	SettingsView   Permission = "settings:view"
	SettingsEdit   Permission = "settings:edit"
	SettingsDelete Permission = "settings:delete"

	BillingView   Permission = "billing:view"
	BillingManage Permission = "billing:manage"
)

var catalog = []Permission{
	TeamView, TeamInvite, TeamEdit, TeamManageRoles, TeamRemove,
	EventsView, EventsCreate, EventsEdit, EventsDelete, EventsPublish,
	OrdersView, OrdersManage, OrdersRefund, OrdersExport,
	BookingsView, BookingsManage, BookingsCheckIn,
	ProductsView, ProductsCreate, ProductsEdit, ProductsDelete,
	NotificationsView, NotificationsSend,
	AnalyticsView, AnalyticsExport,
	SettingsView, SettingsEdit, SettingsDelete,
	BillingView, BillingManage,
}

var known = NewPermissionSet(catalog...)

// All returns a copy of the whole catalog
func All() []Permission {
	return slices.Clone(catalog)
}

func (p Permission) Category() string {
	category, _, _ := strings.Cut(string(p), ":")
	return category
}

func (p Permission) Known() bool {
	return known.Has(p)
}

func ParsePermission(s string) (Permission, error) {
	p := Permission(s)
	if !p.Known() {
		return "", fmt.Errorf("%q: %w", s, ErrUnknownPermission)
	}
	return p, nil
}

// FilterKnown splits raw identifiers into catalog permissions and the ones not in the catalog
func FilterKnown(raw []string) ([]Permission, []string) {
	perms := make([]Permission, 0, len(raw))
	var unknown []string

	for _, s := range raw {
		p, err := ParsePermission(s)
		if err != nil {
			unknown = append(unknown, s)
			continue
		}
		perms = append(perms, p)
	}

	return perms, unknown
}

// PermissionSet is an immutable set of permissions
type PermissionSet struct {
	perms map[Permission]struct{}
}

func NewPermissionSet(perms ...Permission) PermissionSet {
	s := PermissionSet{perms: make(map[Permission]struct{}, len(perms))}
	for _, p := range perms {
		s.perms[p] = struct{}{}
	}
	return s
}

func (s PermissionSet) Has(p Permission) bool {
	_, ok := s.perms[p]
	return ok
}

// HasAny is false for an empty input
func (s PermissionSet) HasAny(perms ...Permission) bool {
	for _, p := range perms {
		if s.Has(p) {
			return true
		}
	}
	return false
}

// HasAll is true for an empty input
func (s PermissionSet) HasAll(perms ...Permission) bool {
	for _, p := range perms {
		if !s.Has(p) {
			return false
		}
	}
	return true
}

func (s PermissionSet) Len() int {
	return len(s.perms)
}

// List returns the permissions in catalog order
func (s PermissionSet) List() []Permission {
	ret := make([]Permission, 0, len(s.perms))
	for _, p := range catalog {
		if s.Has(p) {
			ret = append(ret, p)
		}
	}
	return ret
}
