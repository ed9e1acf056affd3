// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/canonical/merchant-team-service/internal/authorization"
	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/monitoring"
	"github.com/canonical/merchant-team-service/internal/tracing"
	"github.com/canonical/merchant-team-service/internal/types"
	"github.com/canonical/merchant-team-service/pkg/authentication"
)

const TemporaryIDPrefix = "temp-"

const (
	outcomeConfirmed  = "confirmed"
	outcomeRolledBack = "rolled_back"
	outcomeRejected   = "rejected"
)

var _ ServiceInterface = (*Service)(nil)

// Service keeps the team cache in sync with the remote authority. Mutations are
// applied optimistically, then confirmed or rolled back once the authority answers.
type Service struct {
	remote        RemoteInterface
	store         *Store
	pending       *Tracker
	currentUserID string

	mu                 sync.RWMutex
	currentRole        types.Role
	permissions        *authorization.PermissionSet
	loadingMembers     bool
	loadingPermissions bool
	err                error
	closed             bool

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// acting is the authorization state of the current user at the time a mutation starts
type acting struct {
	subject     string
	role        types.Role
	permissions authorization.PermissionSet
}

func (a acting) known() bool {
	return a.role != ""
}

func (s *Service) Members() []types.TeamMember {
	return s.store.State().Members()
}

func (s *Service) TotalMembers() int {
	return s.store.State().TotalMembers()
}

func (s *Service) GetMember(id string) (types.TeamMember, bool) {
	return s.store.State().Member(id)
}

func (s *Service) Subscribe() (<-chan State, func()) {
	return s.store.Subscribe()
}

func (s *Service) CurrentUserID() string {
	return s.currentUserID
}

// CurrentUserRole is empty while the permissions are loading
func (s *Service) CurrentUserRole() types.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.currentRole
}

func (s *Service) CurrentUserPermissions() []authorization.Permission {
	return s.acting().permissions.List()
}

func (s *Service) IsLoadingMembers() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadingMembers
}

func (s *Service) IsLoadingPermissions() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadingPermissions
}

// Err is the last error met while fetching members or permissions
func (s *Service) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.err
}

func (s *Service) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = nil
}

func (s *Service) PendingOperations() []OperationKey {
	return s.pending.Pending()
}

func (s *Service) IsPending(key OperationKey) bool {
	return s.pending.IsPending(key)
}

func (s *Service) HasPermission(p authorization.Permission) bool {
	return s.acting().permissions.Has(p)
}

func (s *Service) HasAnyPermission(perms ...authorization.Permission) bool {
	return s.acting().permissions.HasAny(perms...)
}

func (s *Service) HasAllPermissions(perms ...authorization.Permission) bool {
	return s.acting().permissions.HasAll(perms...)
}

// CanEditMember reports whether the current user outranks the member
func (s *Service) CanEditMember(id string) bool {
	m, ok := s.GetMember(id)
	if !ok {
		return false
	}
	return authorization.CanEditMember(s.CurrentUserRole(), m.Role)
}

// acting falls back to the role map while the server provided permissions are unknown
func (s *Service) acting() acting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a := acting{subject: s.currentUserID, role: s.currentRole}
	if s.permissions != nil {
		a.permissions = *s.permissions
	} else {
		a.permissions = authorization.PermissionsFor(s.currentRole)
	}
	return a
}

// caller is the acting snapshot attributed to the authenticated API caller when there is one
func (s *Service) caller(ctx context.Context) acting {
	a := s.acting()
	if p, ok := authentication.PrincipalFrom(ctx); ok && p.Subject != "" {
		a.subject = p.Subject
	}
	return a
}

// authorize gates a mutation on the current user's permissions. With the role still
// unknown the decision is left to the remote authority.
func (s *Service) authorize(a acting, op OperationKind, permission authorization.Permission, roles ...types.Role) error {
	if !a.known() {
		return nil
	}

	if !a.permissions.Has(permission) {
		s.logger.Security().AuthzFailure(a.subject, string(permission))
		return fmt.Errorf("%s requires %s: %w", op, permission, ErrPermissionDenied)
	}

	for _, r := range roles {
		if !authorization.CanEditMember(a.role, r) {
			s.logger.Security().AuthzFailure(a.subject, string(op))
			return fmt.Errorf("%s cannot act on %s members: %w", a.role, r, ErrPermissionDenied)
		}
	}

	return nil
}

func (s *Service) checkOpen() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return ErrServiceClosed
	}
	return nil
}

func (s *Service) begin(key OperationKey) {
	s.pending.Begin(key)
	s.reportPending()
}

func (s *Service) done(key OperationKey) {
	s.pending.Done(key)
	s.reportPending()
}

func (s *Service) reportPending() {
	if err := s.monitor.SetPendingOperations(float64(s.pending.Len())); err != nil {
		s.logger.Debugf("error setting pending operations metric: %s", err)
	}
}

func (s *Service) outcome(kind OperationKind, outcome string) {
	tags := map[string]string{"kind": string(kind), "outcome": outcome}
	if err := s.monitor.IncMutationOutcome(tags); err != nil {
		s.logger.Debugf("error setting mutation outcome metric: %s", err)
	}
}

func assignable(role types.Role) error {
	if role == types.RoleOwner {
		return ErrOwnerNotAssignable
	}
	if !role.Valid() {
		return fmt.Errorf("%q: %w", role, types.ErrUnknownRole)
	}
	return nil
}

// InviteMember adds an inactive record under a temporary id, then asks the remote authority
// to send the invitation. On success the member list is fetched again and the server record
// supersedes the temporary one, on failure the temporary record is removed.
func (s *Service) InviteMember(ctx context.Context, name, email string, role types.Role) (types.TeamMember, error) {
	ctx, span := s.tracer.Start(ctx, "team.Service.InviteMember")
	defer span.End()

	if err := s.checkOpen(); err != nil {
		return types.TeamMember{}, err
	}

	if err := assignable(role); err != nil {
		s.outcome(OperationInvite, outcomeRejected)
		return types.TeamMember{}, err
	}

	if err := s.authorize(s.caller(ctx), OperationInvite, authorization.TeamInvite, role); err != nil {
		s.outcome(OperationInvite, outcomeRejected)
		return types.TeamMember{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return types.TeamMember{}, fmt.Errorf("failed to generate temporary member ID: %w", err)
	}

	member := types.TeamMember{
		ID:        TemporaryIDPrefix + id.String(),
		Name:      name,
		Email:     email,
		Role:      role,
		Status:    types.StatusInactive,
		InvitedAt: s.now(),
	}

	key := OperationKey{Kind: OperationInvite, TargetID: member.ID}
	s.begin(key)
	defer s.done(key)

	s.store.Apply(MemberUpserted{Member: member})

	// mutations are not cancellable once issued
	remoteCtx := context.WithoutCancel(ctx)

	if err := s.remote.InviteMember(remoteCtx, name, email, role); err != nil {
		s.store.Apply(MemberDeleted{ID: member.ID})
		s.outcome(OperationInvite, outcomeRolledBack)
		s.logger.Warnf("invite of %s failed, temporary member %s removed: %v", email, member.ID, err)
		return types.TeamMember{}, fmt.Errorf("failed to invite member: %w", err)
	}

	s.outcome(OperationInvite, outcomeConfirmed)

	if err := s.FetchMembers(remoteCtx); err != nil {
		s.logger.Warnf("member list refresh after invite failed: %v", err)
	}

	return member, nil
}

// UpdateMemberRole changes the role in place and restores the previous one if the remote authority refuses
func (s *Service) UpdateMemberRole(ctx context.Context, id string, role types.Role) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.UpdateMemberRole")
	defer span.End()

	if err := s.checkOpen(); err != nil {
		return err
	}

	if err := assignable(role); err != nil {
		s.outcome(OperationUpdateRole, outcomeRejected)
		return err
	}

	a := s.caller(ctx)
	key := OperationKey{Kind: OperationUpdateRole, TargetID: id}

	var previous types.Role
	_, err := s.store.Modify(func(st State) ([]Event, error) {
		m, ok := st.Member(id)
		if !ok {
			return nil, fmt.Errorf("%s: %w", id, ErrMemberNotFound)
		}
		if err := s.authorize(a, OperationUpdateRole, authorization.TeamManageRoles, m.Role, role); err != nil {
			return nil, err
		}

		previous = m.Role
		s.begin(key)

		return []Event{MemberPatched{ID: id, Patch: types.RolePatch(role)}}, nil
	})
	if err != nil {
		s.outcome(OperationUpdateRole, outcomeRejected)
		return err
	}
	defer s.done(key)

	grant, err := s.remote.UpdateMemberRole(context.WithoutCancel(ctx), id, role)
	if err != nil {
		s.store.Apply(MemberPatched{ID: id, Patch: types.RolePatch(previous)})
		s.outcome(OperationUpdateRole, outcomeRolledBack)
		s.logger.Warnf("role update of %s to %s failed, restored %s: %v", id, role, previous, err)
		return fmt.Errorf("failed to update member role: %w", err)
	}

	s.outcome(OperationUpdateRole, outcomeConfirmed)

	if id == s.currentUserID && grant != nil {
		if err := s.setGrant(grant); err != nil {
			s.logger.Warnf("ignoring grant returned with own role change: %v", err)
		}
	}

	return nil
}

// UpdateMemberStatus changes the status in place and restores the previous one if the remote authority refuses
func (s *Service) UpdateMemberStatus(ctx context.Context, id string, status types.Status) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.UpdateMemberStatus")
	defer span.End()

	if err := s.checkOpen(); err != nil {
		return err
	}

	if !status.Valid() {
		s.outcome(OperationUpdateStatus, outcomeRejected)
		return fmt.Errorf("%q: %w", status, types.ErrUnknownStatus)
	}

	a := s.caller(ctx)
	key := OperationKey{Kind: OperationUpdateStatus, TargetID: id}

	var previous types.Status
	_, err := s.store.Modify(func(st State) ([]Event, error) {
		m, ok := st.Member(id)
		if !ok {
			return nil, fmt.Errorf("%s: %w", id, ErrMemberNotFound)
		}
		if err := s.authorize(a, OperationUpdateStatus, authorization.TeamEdit, m.Role); err != nil {
			return nil, err
		}

		previous = m.Status
		s.begin(key)

		return []Event{MemberPatched{ID: id, Patch: types.StatusPatch(status)}}, nil
	})
	if err != nil {
		s.outcome(OperationUpdateStatus, outcomeRejected)
		return err
	}
	defer s.done(key)

	if err := s.remote.UpdateMemberStatus(context.WithoutCancel(ctx), id, status); err != nil {
		s.store.Apply(MemberPatched{ID: id, Patch: types.StatusPatch(previous)})
		s.outcome(OperationUpdateStatus, outcomeRolledBack)
		s.logger.Warnf("status update of %s to %s failed, restored %s: %v", id, status, previous, err)
		return fmt.Errorf("failed to update member status: %w", err)
	}

	s.outcome(OperationUpdateStatus, outcomeConfirmed)

	return nil
}

// RemoveMember drops the member and re-inserts the exact record, at the end of the list, if the remote authority refuses
func (s *Service) RemoveMember(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.RemoveMember")
	defer span.End()

	if err := s.checkOpen(); err != nil {
		return err
	}

	a := s.caller(ctx)
	key := OperationKey{Kind: OperationRemove, TargetID: id}

	var removed types.TeamMember
	_, err := s.store.Modify(func(st State) ([]Event, error) {
		m, ok := st.Member(id)
		if !ok {
			return nil, fmt.Errorf("%s: %w", id, ErrMemberNotFound)
		}
		if err := s.authorize(a, OperationRemove, authorization.TeamRemove, m.Role); err != nil {
			return nil, err
		}

		removed = m
		s.begin(key)

		return []Event{MemberDeleted{ID: id}}, nil
	})
	if err != nil {
		s.outcome(OperationRemove, outcomeRejected)
		return err
	}
	defer s.done(key)

	if err := s.remote.RemoveMember(context.WithoutCancel(ctx), id); err != nil {
		s.store.Apply(MemberUpserted{Member: removed})
		s.outcome(OperationRemove, outcomeRolledBack)
		s.logger.Warnf("removal of %s failed, member restored: %v", id, err)
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.outcome(OperationRemove, outcomeConfirmed)

	return nil
}

// ResendInvitation asks the remote authority to notify the invitee again, the cache is never touched
func (s *Service) ResendInvitation(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.ResendInvitation")
	defer span.End()

	if err := s.checkOpen(); err != nil {
		return err
	}

	if !s.store.State().Has(id) {
		return fmt.Errorf("%s: %w", id, ErrMemberNotFound)
	}

	if err := s.authorize(s.caller(ctx), OperationResend, authorization.TeamInvite); err != nil {
		s.outcome(OperationResend, outcomeRejected)
		return err
	}

	key := OperationKey{Kind: OperationResend, TargetID: id}
	s.begin(key)
	defer s.done(key)

	if err := s.remote.ResendInvitation(context.WithoutCancel(ctx), id); err != nil {
		s.outcome(OperationResend, outcomeRolledBack)
		s.logger.Warnf("resending invitation to %s failed: %v", id, err)
		return fmt.Errorf("failed to resend invitation: %w", err)
	}

	s.outcome(OperationResend, outcomeConfirmed)

	return nil
}

// FetchMembers replaces the cache with the remote listing. On failure the cached
// members are kept and the error is recorded for Err.
func (s *Service) FetchMembers(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.FetchMembers")
	defer span.End()

	s.setLoading(&s.loadingMembers, true)
	defer s.setLoading(&s.loadingMembers, false)

	page, err := s.remote.FetchMembers(ctx)
	if err != nil {
		s.setError(err)
		s.logger.Errorf("failed to fetch members: %v", err)
		return fmt.Errorf("failed to fetch members: %w", err)
	}

	members := make([]types.TeamMember, 0, len(page.Members))
	for _, m := range page.Members {
		if err := validMember(m); err != nil {
			s.logger.Warnf("skipping member from listing: %v", err)
			continue
		}
		members = append(members, m)
	}

	s.store.Apply(MembersReplaced{Members: members, Total: page.Total})

	return nil
}

// FetchCurrentUserPermissions loads the role and permissions the remote authority grants the current user
func (s *Service) FetchCurrentUserPermissions(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.FetchCurrentUserPermissions")
	defer span.End()

	s.setLoading(&s.loadingPermissions, true)
	defer s.setLoading(&s.loadingPermissions, false)

	grant, err := s.remote.FetchCurrentUserPermissions(ctx)
	if err != nil {
		s.setError(err)
		s.logger.Errorf("failed to fetch permissions: %v", err)
		return fmt.Errorf("failed to fetch permissions: %w", err)
	}

	if err := s.setGrant(grant); err != nil {
		s.setError(err)
		return fmt.Errorf("failed to fetch permissions: %w", err)
	}

	return nil
}

// RefreshTeam fetches members and permissions concurrently and returns the first failure
func (s *Service) RefreshTeam(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "team.Service.RefreshTeam")
	defer span.End()

	if err := s.checkOpen(); err != nil {
		return err
	}

	s.ClearError()

	var g errgroup.Group
	g.Go(func() error { return s.FetchMembers(ctx) })
	g.Go(func() error { return s.FetchCurrentUserPermissions(ctx) })

	return g.Wait()
}

// Close releases the subscribers, mutations fail afterwards
func (s *Service) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.store.Close()
}

// setGrant replaces the current role and permissions, a grant without
// permissions falls back to the role map
func (s *Service) setGrant(grant *types.PermissionGrant) error {
	if !grant.Role.Valid() {
		return fmt.Errorf("%q: %w", grant.Role, types.ErrUnknownRole)
	}

	set := authorization.PermissionsFor(grant.Role)
	if len(grant.Permissions) > 0 {
		perms, unknown := authorization.FilterKnown(grant.Permissions)
		if len(unknown) > 0 {
			s.logger.Warnf("ignoring unknown permissions %v for role %s", unknown, grant.Role)
		}
		set = authorization.NewPermissionSet(perms...)
	}

	s.mu.Lock()
	changed := s.currentRole != grant.Role
	s.currentRole = grant.Role
	s.permissions = &set
	s.mu.Unlock()

	if changed {
		s.logger.Security().PermissionChanged(s.currentUserID, string(grant.Role))
	}

	return nil
}

func (s *Service) setLoading(flag *bool, v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	*flag = v
}

func (s *Service) setError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = err
}

func validMember(m types.TeamMember) error {
	if m.ID == "" {
		return fmt.Errorf("missing id: %w", ErrInvalidMember)
	}
	if !m.Role.Valid() {
		return fmt.Errorf("member %s role %q: %w", m.ID, m.Role, ErrInvalidMember)
	}
	if !m.Status.Valid() {
		return fmt.Errorf("member %s status %q: %w", m.ID, m.Status, ErrInvalidMember)
	}
	return nil
}

func NewService(
	remote RemoteInterface,
	store *Store,
	pending *Tracker,
	currentUserID string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		remote:        remote,
		store:         store,
		pending:       pending,
		currentUserID: currentUserID,
		now:           time.Now,
		tracer:        tracer,
		monitor:       monitor,
		logger:        logger,
	}
}
