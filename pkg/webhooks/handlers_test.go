// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/merchant-team-service/internal/realtime"
	"github.com/canonical/merchant-team-service/pkg/team"
)

const body = `{"type":"member-removed","payload":{"id":"u1"}}`

func TestAPI_TeamEvents(t *testing.T) {
	tests := []struct {
		name           string
		secret         string
		header         string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
	}{
		{
			name: "accepted without secret",
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				s.EXPECT().HandleTeamEvent(gomock.Any(), []byte(body)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "accepted with matching secret",
			secret: "s3cret",
			header: "s3cret",
			setupMocks: func(s *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				s.EXPECT().HandleTeamEvent(gomock.Any(), []byte(body)).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "wrong secret",
			secret: "s3cret",
			header: "guess",
			setupMocks: func(_ *MockServiceInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				l.EXPECT().Security().Return(sec)
				sec.EXPECT().AuthenticationFailure("invalid webhook secret")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "missing secret",
			secret: "s3cret",
			setupMocks: func(_ *MockServiceInterface, l *MockLoggerInterface, sec *MockSecurityLoggerInterface) {
				l.EXPECT().Security().Return(sec)
				sec.EXPECT().AuthenticationFailure(gomock.Any())
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown event is acknowledged",
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				s.EXPECT().HandleTeamEvent(gomock.Any(), gomock.Any()).Return(fmt.Errorf("decode: %w", realtime.ErrUnknownEvent))
				l.EXPECT().Warnf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name: "malformed event",
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				s.EXPECT().HandleTeamEvent(gomock.Any(), gomock.Any()).Return(fmt.Errorf("decode: %w", realtime.ErrMalformedEvent))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid member",
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				s.EXPECT().HandleTeamEvent(gomock.Any(), gomock.Any()).Return(team.ErrInvalidMember)
				l.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "handler failure",
			setupMocks: func(s *MockServiceInterface, l *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				s.EXPECT().HandleTeamEvent(gomock.Any(), gomock.Any()).Return(errors.New("boom"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			tt.setupMocks(mockService, mockLogger, mockSecurity)

			router := chi.NewMux()
			NewAPI(mockService, tt.secret, mockLogger).RegisterEndpoints(router)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/webhooks/team-events", bytes.NewBufferString(body))
			if tt.header != "" {
				req.Header.Set(SecretHeader, tt.header)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				data, _ := io.ReadAll(res.Body)
				t.Errorf("expected status %d, got %d: %s", tt.expectedStatus, res.StatusCode, data)
			}
		})
	}
}

func TestAPI_TeamEventsRejectsGet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	router := chi.NewMux()
	NewAPI(NewMockServiceInterface(ctrl), "", NewMockLoggerInterface(ctrl)).RegisterEndpoints(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/webhooks/team-events", nil))

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}
}
