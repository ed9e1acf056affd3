// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/monitoring"
	"github.com/canonical/merchant-team-service/internal/tracing"
	"github.com/canonical/merchant-team-service/pkg/authentication"
	"github.com/canonical/merchant-team-service/pkg/metrics"
	"github.com/canonical/merchant-team-service/pkg/status"
	"github.com/canonical/merchant-team-service/pkg/team"
	"github.com/canonical/merchant-team-service/pkg/webhooks"
)

type Config struct {
	CORSOrigins   []string
	WebhookSecret string
}

// NewRouter wires the local API, only the team routes sit behind token verification
func NewRouter(
	cfg Config,
	teamService team.ServiceInterface,
	events webhooks.EventHandlerInterface,
	verifier authentication.TokenVerifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(teamService, tracer, monitor, logger).RegisterEndpoints(router)
	webhooks.NewAPI(webhooks.NewService(events, tracer, logger), cfg.WebhookSecret, logger).RegisterEndpoints(router)
	team.NewAPI(teamService, tracer, monitor, logger).RegisterEndpoints(
		router,
		authentication.NewMiddleware(verifier, tracer, logger).Authenticate(),
	)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
