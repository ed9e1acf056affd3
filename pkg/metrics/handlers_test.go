// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/monitoring/prometheus"
)

func TestMetricsExposeTeamCollectors(t *testing.T) {
	logger := logging.NewNoopLogger()
	monitor := prometheus.NewMonitor("team-metrics-test", logger)

	if err := monitor.IncMutationOutcome(map[string]string{"kind": "remove", "outcome": "confirmed"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mux := chi.NewMux()
	NewAPI(logger).RegisterEndpoints(mux)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v0/metrics", nil))

	res := w.Result()
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", res.StatusCode)
	}

	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), `service="team-metrics-test"`) {
		t.Errorf("expected mutation outcome series for the service in:\n%s", body)
	}
}
