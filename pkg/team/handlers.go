// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"

	"github.com/canonical/merchant-team-service/internal/authorization"
	httptypes "github.com/canonical/merchant-team-service/internal/http/types"
	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/monitoring"
	"github.com/canonical/merchant-team-service/internal/tracing"
	"github.com/canonical/merchant-team-service/internal/types"
)

const streamWriteTimeout = 10 * time.Second

type InviteMemberRequest struct {
	Name  string `json:"name" validate:"required,max=256"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=owner admin manager staff"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=owner admin manager staff"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=inactive active suspended"`
}

// CurrentUser describes the caller's authorization state and the loading state of the cache
type CurrentUser struct {
	ID                   string                     `json:"id"`
	Role                 types.Role                 `json:"role,omitempty"`
	Permissions          []authorization.Permission `json:"permissions"`
	IsLoadingMembers     bool                       `json:"isLoadingMembers"`
	IsLoadingPermissions bool                       `json:"isLoadingPermissions"`
	Error                string                     `json:"error,omitempty"`
}

type MemberList struct {
	Members      []types.TeamMember `json:"members"`
	TotalMembers int                `json:"totalMembers"`
}

type PermissionCheck struct {
	Permissions []authorization.Permission `json:"permissions"`
	Mode        string                     `json:"mode"`
	Allowed     bool                       `json:"allowed"`
}

// Snapshot is pushed on the stream endpoint every time the cache changes
type Snapshot struct {
	Version      uint64             `json:"version"`
	Members      []types.TeamMember `json:"members"`
	TotalMembers int                `json:"totalMembers"`
	Pending      []OperationKey     `json:"pending"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate
	upgrader websocket.Upgrader

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RegisterEndpoints mounts the team routes, middlewares only wrap this subtree
func (a *API) RegisterEndpoints(mux *chi.Mux, middlewares ...func(http.Handler) http.Handler) {
	mux.Route("/api/v0/team", func(r chi.Router) {
		r.Use(middlewares...)

		r.Get("/members", a.listMembers)
		r.Post("/members", a.inviteMember)
		r.Get("/members/{id}", a.getMember)
		r.Delete("/members/{id}", a.removeMember)
		r.Patch("/members/{id}/role", a.updateRole)
		r.Patch("/members/{id}/status", a.updateStatus)
		r.Post("/members/{id}/resend-invitation", a.resendInvitation)
		r.Post("/refresh", a.refresh)
		r.Get("/me", a.me)
		r.Delete("/error", a.clearError)
		r.Get("/permissions/check", a.checkPermissions)
		r.Get("/pending", a.pending)
		r.Get("/stream", a.stream)
	})
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	members := a.service.Members()

	a.write(w, http.StatusOK, MemberList{Members: members, TotalMembers: a.service.TotalMembers()}, "List of team members")
}

func (a *API) getMember(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	member, ok := a.service.GetMember(id)
	if !ok {
		a.writeError(w, http.StatusNotFound, fmt.Sprintf("%s: %s", id, ErrMemberNotFound))
		return
	}

	a.write(w, http.StatusOK, member, "Team member detail")
}

func (a *API) inviteMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.inviteMember")
	defer span.End()

	req := new(InviteMemberRequest)
	if !a.decode(w, r, req) {
		return
	}

	member, err := a.service.InviteMember(ctx, req.Name, req.Email, types.Role(req.Role))
	if err != nil {
		a.failure(w, err)
		return
	}

	a.write(w, http.StatusCreated, member, "Invitation sent")
}

func (a *API) updateRole(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.updateRole")
	defer span.End()

	req := new(UpdateRoleRequest)
	if !a.decode(w, r, req) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := a.service.UpdateMemberRole(ctx, id, types.Role(req.Role)); err != nil {
		a.failure(w, err)
		return
	}

	a.memberResult(w, id, "Role updated")
}

func (a *API) updateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.updateStatus")
	defer span.End()

	req := new(UpdateStatusRequest)
	if !a.decode(w, r, req) {
		return
	}

	id := chi.URLParam(r, "id")
	if err := a.service.UpdateMemberStatus(ctx, id, types.Status(req.Status)); err != nil {
		a.failure(w, err)
		return
	}

	a.memberResult(w, id, "Status updated")
}

func (a *API) removeMember(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.removeMember")
	defer span.End()

	if err := a.service.RemoveMember(ctx, chi.URLParam(r, "id")); err != nil {
		a.failure(w, err)
		return
	}

	a.write(w, http.StatusOK, nil, "Member removed")
}

func (a *API) resendInvitation(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.resendInvitation")
	defer span.End()

	if err := a.service.ResendInvitation(ctx, chi.URLParam(r, "id")); err != nil {
		a.failure(w, err)
		return
	}

	a.write(w, http.StatusOK, nil, "Invitation resent")
}

func (a *API) refresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "team.API.refresh")
	defer span.End()

	if err := a.service.RefreshTeam(ctx); err != nil {
		a.failure(w, err)
		return
	}

	a.write(w, http.StatusOK, MemberList{Members: a.service.Members(), TotalMembers: a.service.TotalMembers()}, "Team refreshed")
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	user := CurrentUser{
		ID:                   a.service.CurrentUserID(),
		Role:                 a.service.CurrentUserRole(),
		Permissions:          a.service.CurrentUserPermissions(),
		IsLoadingMembers:     a.service.IsLoadingMembers(),
		IsLoadingPermissions: a.service.IsLoadingPermissions(),
	}
	if err := a.service.Err(); err != nil {
		user.Error = err.Error()
	}

	a.write(w, http.StatusOK, user, "Current user")
}

func (a *API) clearError(w http.ResponseWriter, r *http.Request) {
	a.service.ClearError()

	a.write(w, http.StatusOK, nil, "Error cleared")
}

func (a *API) checkPermissions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var perms []authorization.Permission
	for _, raw := range query["permission"] {
		for _, item := range strings.Split(raw, ",") {
			p, err := authorization.ParsePermission(strings.TrimSpace(item))
			if err != nil {
				a.writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			perms = append(perms, p)
		}
	}

	mode := query.Get("mode")
	if mode == "" {
		mode = "all"
	}

	result := PermissionCheck{Permissions: perms, Mode: mode}
	switch mode {
	case "any":
		result.Allowed = a.service.HasAnyPermission(perms...)
	case "all":
		result.Allowed = a.service.HasAllPermissions(perms...)
	default:
		a.writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown mode %q, expected any or all", mode))
		return
	}

	a.write(w, http.StatusOK, result, "Permission check")
}

func (a *API) pending(w http.ResponseWriter, r *http.Request) {
	a.write(w, http.StatusOK, a.service.PendingOperations(), "Pending operations")
}

// stream pushes a snapshot of the cache on connection and after every change
func (a *API) stream(w http.ResponseWriter, r *http.Request) {
	conn, err := a.upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.logger.Errorf("failed to upgrade stream connection: %v", err)
		return
	}
	defer conn.Close()

	states, unsubscribe := a.service.Subscribe()
	defer unsubscribe()

	// the client never sends data, reading only detects the close
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-gone:
			return
		case <-r.Context().Done():
			return
		case st, ok := <-states:
			if !ok {
				_ = conn.WriteControl(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "service closed"),
					time.Now().Add(streamWriteTimeout),
				)
				return
			}

			snapshot := Snapshot{
				Version:      st.Version(),
				Members:      st.Members(),
				TotalMembers: st.TotalMembers(),
				Pending:      a.service.PendingOperations(),
			}

			_ = conn.SetWriteDeadline(time.Now().Add(streamWriteTimeout))
			if err := conn.WriteJSON(snapshot); err != nil {
				a.logger.Debugf("stream client went away: %v", err)
				return
			}
		}
	}
}

func (a *API) memberResult(w http.ResponseWriter, id, message string) {
	member, ok := a.service.GetMember(id)
	if !ok {
		// removed by a pushed event while the mutation was in flight
		a.write(w, http.StatusOK, nil, message)
		return
	}
	a.write(w, http.StatusOK, member, message)
}

func (a *API) decode(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}

	if err := a.validate.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, validationMessage(err))
		return false
	}

	return true
}

func (a *API) failure(w http.ResponseWriter, err error) {
	status := StatusFromError(err)
	if status >= http.StatusInternalServerError {
		a.logger.Errorf("team request failed: %v", err)
	}
	a.writeError(w, status, err.Error())
}

func (a *API) write(w http.ResponseWriter, status int, data any, message string) {
	if err := httptypes.WriteJSON(w, status, data, message); err != nil {
		a.logger.Errorf("failed to write response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	if err := httptypes.WriteError(w, status, message); err != nil {
		a.logger.Errorf("failed to write error response: %v", err)
	}
}

// StatusFromError maps coordinator errors to HTTP status codes, anything unknown is blamed on the remote authority
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, ErrOwnerNotAssignable),
		errors.Is(err, types.ErrUnknownRole),
		errors.Is(err, types.ErrUnknownStatus),
		errors.Is(err, authorization.ErrUnknownPermission):
		return http.StatusBadRequest
	case errors.Is(err, ErrServiceClosed):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		case "max":
			msgs = append(msgs, field+" must be at most "+e.Param()+" characters")
		case "oneof":
			msgs = append(msgs, field+" must be one of "+e.Param())
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}

	return strings.Join(msgs, ", ")
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = validator.New(validator.WithRequiredStructEnabled())
	a.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
