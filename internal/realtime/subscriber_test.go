// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package realtime

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/oauth2"

	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/monitoring"
	"github.com/canonical/merchant-team-service/internal/tracing"
	"github.com/canonical/merchant-team-service/internal/types"
)

func wsURL(server *httptest.Server) string {
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func TestSubscriberForwardsEventsAndReconnects(t *testing.T) {
	var connections atomic.Int32
	upgrader := websocket.Upgrader{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer push-token" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// every connection pushes one junk frame and one event, then drops
		n := connections.Add(1)
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"member-promoted","payload":{}}`))

		event, _ := EncodeMemberEvent(types.MemberRemoved{ID: "u" + string(rune('0'+n))})
		_ = conn.WriteMessage(websocket.TextMessage, event)
	}))
	defer server.Close()

	tokens := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "push-token", TokenType: "Bearer"})

	s, err := NewSubscriber(wsURL(server), tokens, 10*time.Millisecond, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	out := make(chan types.MemberEvent)
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, out) }()

	for _, expected := range []string{"u1", "u2"} {
		select {
		case event := <-out:
			removed, ok := event.(types.MemberRemoved)
			if !ok || removed.ID != expected {
				t.Errorf("expected removal of %s, got %#v", expected, event)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for the removal of %s", expected)
		}
	}

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancellation")
	}
}

func TestSubscriberKeepsRetryingUntilCancelled(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	s, err := NewSubscriber(wsURL(server), nil, 5*time.Millisecond, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	if err := s.Run(ctx, make(chan types.MemberEvent)); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}

	if attempts.Load() < 2 {
		t.Errorf("expected several dial attempts, got %d", attempts.Load())
	}
}

func TestNewSubscriberRequiresURL(t *testing.T) {
	if _, err := NewSubscriber("", nil, time.Second, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()); !errors.Is(err, ErrMissingURL) {
		t.Errorf("expected missing url error, got %v", err)
	}
}
