// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"

	"github.com/canonical/merchant-team-service/internal/authorization"
	"github.com/canonical/merchant-team-service/internal/types"
)

// RemoteInterface is the remote authority owning team membership.
// Every call may fail, failures carry a human readable message.
type RemoteInterface interface {
	FetchMembers(ctx context.Context) (*types.MembersPage, error)
	FetchCurrentUserPermissions(ctx context.Context) (*types.PermissionGrant, error)
	InviteMember(ctx context.Context, name, email string, role types.Role) error
	UpdateMemberRole(ctx context.Context, id string, role types.Role) (*types.PermissionGrant, error)
	UpdateMemberStatus(ctx context.Context, id string, status types.Status) error
	RemoveMember(ctx context.Context, id string) error
	ResendInvitation(ctx context.Context, id string) error
}

type ServiceInterface interface {
	Members() []types.TeamMember
	TotalMembers() int
	GetMember(id string) (types.TeamMember, bool)
	Subscribe() (<-chan State, func())

	CurrentUserID() string
	CurrentUserRole() types.Role
	CurrentUserPermissions() []authorization.Permission
	IsLoadingMembers() bool
	IsLoadingPermissions() bool
	Err() error
	ClearError()

	PendingOperations() []OperationKey
	IsPending(OperationKey) bool

	HasPermission(authorization.Permission) bool
	HasAnyPermission(...authorization.Permission) bool
	HasAllPermissions(...authorization.Permission) bool
	CanEditMember(id string) bool

	InviteMember(ctx context.Context, name, email string, role types.Role) (types.TeamMember, error)
	UpdateMemberRole(ctx context.Context, id string, role types.Role) error
	UpdateMemberStatus(ctx context.Context, id string, status types.Status) error
	RemoveMember(ctx context.Context, id string) error
	ResendInvitation(ctx context.Context, id string) error
	RefreshTeam(ctx context.Context) error
}

// EventHandlerInterface consumes member events pushed by the remote authority
type EventHandlerInterface interface {
	Handle(ctx context.Context, event types.MemberEvent) error
}
