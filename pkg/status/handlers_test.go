// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/version"
)

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_status.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type statusBody struct {
	Data    Status `json:"data"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func TestAliveReportsTeamSync(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockTeamStatusInterface)
		expected   Status
	}{
		{
			name: "synced",
			setupMocks: func(s *MockTeamStatusInterface) {
				s.EXPECT().TotalMembers().Return(3)
				s.EXPECT().Err().Return(nil)
				s.EXPECT().IsLoadingMembers().Return(false)
				s.EXPECT().IsLoadingPermissions().Return(false)
			},
			expected: Status{Status: StatusOK, TotalMembers: 3},
		},
		{
			name: "loading permissions",
			setupMocks: func(s *MockTeamStatusInterface) {
				s.EXPECT().TotalMembers().Return(0)
				s.EXPECT().Err().Return(nil)
				s.EXPECT().IsLoadingMembers().Return(false)
				s.EXPECT().IsLoadingPermissions().Return(true)
			},
			expected: Status{Status: StatusLoading},
		},
		{
			name: "last fetch failed",
			setupMocks: func(s *MockTeamStatusInterface) {
				s.EXPECT().TotalMembers().Return(2)
				s.EXPECT().Err().Return(errors.New("remote unavailable"))
			},
			expected: Status{Status: StatusDegraded, TotalMembers: 2, LastError: "remote unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTeam := NewMockTeamStatusInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "status.API.alive").Return(ctx, trace.SpanFromContext(ctx))
			tt.setupMocks(mockTeam)

			mux := chi.NewMux()
			NewAPI(mockTeam, mockTracer, mockMonitor, logging.NewNoopLogger()).RegisterEndpoints(mux)

			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/status", nil))

			if w.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", w.Code)
			}

			var body statusBody
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body.Data != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, body.Data)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMonitor := NewMockMonitorInterface(ctrl)
	mockMonitor.EXPECT().GetService().Return("merchant-team-service")

	mux := chi.NewMux()
	NewAPI(NewMockTeamStatusInterface(ctrl), NewMockTracingInterface(ctrl), mockMonitor, logging.NewNoopLogger()).RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/version", nil))

	var body struct {
		Data BuildInfo `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	expected := BuildInfo{Version: version.Version, Service: "merchant-team-service"}
	if body.Data != expected {
		t.Errorf("expected %+v, got %+v", expected, body.Data)
	}
}
