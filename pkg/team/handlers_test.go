// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/mock/gomock"

	"github.com/canonical/merchant-team-service/internal/authorization"
	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/monitoring"
	"github.com/canonical/merchant-team-service/internal/tracing"
	"github.com/canonical/merchant-team-service/internal/types"
)

func newTestRouter(svc ServiceInterface) *chi.Mux {
	mux := chi.NewMux()
	NewAPI(svc, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

func TestAPIEndpoints(t *testing.T) {
	u1 := member("u1", types.RoleStaff, types.StatusActive)

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "list members",
			method: http.MethodGet,
			path:   "/api/v0/team/members",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().Members().Return([]types.TeamMember{u1})
				svc.EXPECT().TotalMembers().Return(1)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"totalMembers":1`,
		},
		{
			name:   "get member",
			method: http.MethodGet,
			path:   "/api/v0/team/members/u1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().GetMember("u1").Return(u1, true)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"email":"u1@example.com"`,
		},
		{
			name:   "get unknown member",
			method: http.MethodGet,
			path:   "/api/v0/team/members/ghost",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().GetMember("ghost").Return(types.TeamMember{}, false)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "invite",
			method: http.MethodPost,
			path:   "/api/v0/team/members",
			body:   `{"name":"Jane","email":"jane@x.com","role":"staff"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().InviteMember(gomock.Any(), "Jane", "jane@x.com", types.RoleStaff).
					Return(member("temp-1", types.RoleStaff, types.StatusInactive), nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"temp-1"`,
		},
		{
			name:           "invite with invalid body",
			method:         http.MethodPost,
			path:           "/api/v0/team/members",
			body:           `not-json`,
			setupMocks:     func(svc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invite with invalid email",
			method:         http.MethodPost,
			path:           "/api/v0/team/members",
			body:           `{"name":"Jane","email":"jane","role":"staff"}`,
			setupMocks:     func(svc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "email must be a valid email",
		},
		{
			name:           "invite with unknown role",
			method:         http.MethodPost,
			path:           "/api/v0/team/members",
			body:           `{"name":"Jane","email":"jane@x.com","role":"guest"}`,
			setupMocks:     func(svc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "role must be one of",
		},
		{
			name:   "invite denied",
			method: http.MethodPost,
			path:   "/api/v0/team/members",
			body:   `{"name":"Jane","email":"jane@x.com","role":"admin"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().InviteMember(gomock.Any(), "Jane", "jane@x.com", types.RoleAdmin).
					Return(types.TeamMember{}, ErrPermissionDenied)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "invite remote failure",
			method: http.MethodPost,
			path:   "/api/v0/team/members",
			body:   `{"name":"Jane","email":"jane@x.com","role":"staff"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().InviteMember(gomock.Any(), "Jane", "jane@x.com", types.RoleStaff).
					Return(types.TeamMember{}, fmt.Errorf("failed to invite member: %w", errRemote))
			},
			expectedStatus: http.StatusBadGateway,
			expectedBody:   errRemote.Error(),
		},
		{
			name:   "update role",
			method: http.MethodPatch,
			path:   "/api/v0/team/members/u1/role",
			body:   `{"role":"manager"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateMemberRole(gomock.Any(), "u1", types.RoleManager).Return(nil)
				svc.EXPECT().GetMember("u1").Return(member("u1", types.RoleManager, types.StatusActive), true)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"role":"manager"`,
		},
		{
			name:   "update role to owner",
			method: http.MethodPatch,
			path:   "/api/v0/team/members/u1/role",
			body:   `{"role":"owner"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateMemberRole(gomock.Any(), "u1", types.RoleOwner).Return(ErrOwnerNotAssignable)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "update role of unknown member",
			method: http.MethodPatch,
			path:   "/api/v0/team/members/ghost/role",
			body:   `{"role":"staff"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateMemberRole(gomock.Any(), "ghost", types.RoleStaff).Return(fmt.Errorf("ghost: %w", ErrMemberNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "update status",
			method: http.MethodPatch,
			path:   "/api/v0/team/members/u1/status",
			body:   `{"status":"suspended"}`,
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().UpdateMemberStatus(gomock.Any(), "u1", types.StatusSuspended).Return(nil)
				svc.EXPECT().GetMember("u1").Return(types.TeamMember{}, false)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "update status with unknown status",
			method:         http.MethodPatch,
			path:           "/api/v0/team/members/u1/status",
			body:           `{"status":"deleted"}`,
			setupMocks:     func(svc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "remove",
			method: http.MethodDelete,
			path:   "/api/v0/team/members/u1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().RemoveMember(gomock.Any(), "u1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "remove after close",
			method: http.MethodDelete,
			path:   "/api/v0/team/members/u1",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().RemoveMember(gomock.Any(), "u1").Return(ErrServiceClosed)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:   "resend invitation",
			method: http.MethodPost,
			path:   "/api/v0/team/members/u1/resend-invitation",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ResendInvitation(gomock.Any(), "u1").Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "refresh",
			method: http.MethodPost,
			path:   "/api/v0/team/refresh",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().RefreshTeam(gomock.Any()).Return(nil)
				svc.EXPECT().Members().Return([]types.TeamMember{u1})
				svc.EXPECT().TotalMembers().Return(1)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "current user",
			method: http.MethodGet,
			path:   "/api/v0/team/me",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().CurrentUserID().Return(selfID)
				svc.EXPECT().CurrentUserRole().Return(types.RoleStaff)
				svc.EXPECT().CurrentUserPermissions().Return([]authorization.Permission{authorization.EventsView})
				svc.EXPECT().IsLoadingMembers().Return(false)
				svc.EXPECT().IsLoadingPermissions().Return(true)
				svc.EXPECT().Err().Return(errors.New("listing failed"))
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"error":"listing failed"`,
		},
		{
			name:   "clear error",
			method: http.MethodDelete,
			path:   "/api/v0/team/error",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().ClearError()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "check any permission",
			method: http.MethodGet,
			path:   "/api/v0/team/permissions/check?permission=team:invite,team:view&mode=any",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().HasAnyPermission(authorization.TeamInvite, authorization.TeamView).Return(true)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"allowed":true`,
		},
		{
			name:   "check all permissions by default",
			method: http.MethodGet,
			path:   "/api/v0/team/permissions/check?permission=team:invite&permission=team:remove",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().HasAllPermissions(authorization.TeamInvite, authorization.TeamRemove).Return(false)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"allowed":false`,
		},
		{
			name:           "check unknown permission",
			method:         http.MethodGet,
			path:           "/api/v0/team/permissions/check?permission=spaceship:fly",
			setupMocks:     func(svc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "check with unknown mode",
			method:         http.MethodGet,
			path:           "/api/v0/team/permissions/check?permission=team:view&mode=some",
			setupMocks:     func(svc *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "pending operations",
			method: http.MethodGet,
			path:   "/api/v0/team/pending",
			setupMocks: func(svc *MockServiceInterface) {
				svc.EXPECT().PendingOperations().Return([]OperationKey{{Kind: OperationRemove, TargetID: "u1"}})
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"kind":"remove"`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			test.setupMocks(svc)

			req := httptest.NewRequest(test.method, test.path, bytes.NewBufferString(test.body))
			w := httptest.NewRecorder()

			newTestRouter(svc).ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", test.expectedStatus, w.Code, w.Body.String())
			}

			if test.expectedBody != "" && !strings.Contains(w.Body.String(), test.expectedBody) {
				t.Errorf("expected body to contain %s, got %s", test.expectedBody, w.Body.String())
			}
		})
	}
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{err: fmt.Errorf("u1: %w", ErrMemberNotFound), expected: http.StatusNotFound},
		{err: ErrPermissionDenied, expected: http.StatusForbidden},
		{err: ErrOwnerNotAssignable, expected: http.StatusBadRequest},
		{err: types.ErrUnknownStatus, expected: http.StatusBadRequest},
		{err: ErrServiceClosed, expected: http.StatusServiceUnavailable},
		{err: errRemote, expected: http.StatusBadGateway},
	}

	for _, test := range tests {
		if got := StatusFromError(test.err); got != test.expected {
			t.Errorf("StatusFromError(%v): expected %d, got %d", test.err, test.expected, got)
		}
	}
}

func TestAPIStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockServiceInterface(ctrl)
	states := make(chan State, 1)
	unsubscribed := make(chan struct{})

	svc.EXPECT().Subscribe().Return((<-chan State)(states), func() { close(unsubscribed) })
	svc.EXPECT().PendingOperations().Return([]OperationKey{{Kind: OperationInvite, TargetID: "temp-1"}}).AnyTimes()

	server := httptest.NewServer(newTestRouter(svc))
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/api/v0/team/stream", nil)
	if err != nil {
		t.Fatalf("failed to dial stream: %v", err)
	}

	states <- NewState(member("u1", types.RoleStaff, types.StatusActive), member("u2", types.RoleAdmin, types.StatusActive))

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	var snapshot Snapshot
	if err := conn.ReadJSON(&snapshot); err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}

	if snapshot.TotalMembers != 2 || len(snapshot.Members) != 2 {
		t.Errorf("unexpected snapshot %+v", snapshot)
	}

	if len(snapshot.Pending) != 1 || snapshot.Pending[0].Kind != OperationInvite {
		t.Errorf("expected pending invite, got %+v", snapshot.Pending)
	}

	conn.Close()

	select {
	case <-unsubscribed:
	case <-time.After(5 * time.Second):
		t.Fatalf("expected the stream to unsubscribe once the client left")
	}
}

func TestAPIStreamEndsWhenServiceCloses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewMockServiceInterface(ctrl)
	states := make(chan State)

	svc.EXPECT().Subscribe().Return((<-chan State)(states), func() {})

	server := httptest.NewServer(newTestRouter(svc))
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(server.URL, "http")+"/api/v0/team/stream", nil)
	if err != nil {
		t.Fatalf("failed to dial stream: %v", err)
	}
	defer conn.Close()

	close(states)

	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	_, _, err = conn.ReadMessage()
	if !websocket.IsCloseError(err, websocket.CloseGoingAway) {
		t.Errorf("expected a going away close, got %v", err)
	}
}
