// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/merchant-team-service/internal/http/types"
	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/monitoring"
	"github.com/canonical/merchant-team-service/internal/tracing"
	"github.com/canonical/merchant-team-service/internal/version"
)

const (
	StatusOK       = "ok"
	StatusLoading  = "loading"
	StatusDegraded = "degraded"
)

type Status struct {
	Status       string `json:"status"`
	TotalMembers int    `json:"total_members"`
	LastError    string `json:"last_error,omitempty"`
}

type BuildInfo struct {
	Version string `json:"version"`
	Service string `json:"service"`
}

type API struct {
	team TeamStatusInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
}

// alive always answers 200, a failed sync is reported in the body as the cache stays usable
func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	s := Status{Status: StatusOK, TotalMembers: a.team.TotalMembers()}

	switch err := a.team.Err(); {
	case err != nil:
		s.Status = StatusDegraded
		s.LastError = err.Error()
	case a.team.IsLoadingMembers() || a.team.IsLoadingPermissions():
		s.Status = StatusLoading
	}

	if err := httptypes.WriteJSON(w, http.StatusOK, s, "status"); err != nil {
		a.logger.Errorf("failed to write status response: %v", err)
	}
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	info := BuildInfo{Version: version.Version, Service: a.monitor.GetService()}

	if err := httptypes.WriteJSON(w, http.StatusOK, info, "version"); err != nil {
		a.logger.Errorf("failed to write version response: %v", err)
	}
}

func NewAPI(team TeamStatusInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.team = team
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
