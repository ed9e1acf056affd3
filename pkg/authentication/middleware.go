// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"strings"

	httptypes "github.com/canonical/merchant-team-service/internal/http/types"
	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/tracing"
)

const bearerPrefix = "Bearer "

type Middleware struct {
	verifier TokenVerifierInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// Authenticate rejects requests without a valid bearer token and stores the caller in the request context.
// The token may also be passed as access_token query parameter, browsers cannot set headers on websocket upgrades.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			principal, err := m.verifier.VerifyToken(ctx, bearerToken(r))
			if err != nil {
				m.logger.Debugf("authentication failed: %v", err)

				status, message := http.StatusUnauthorized, "invalid token"
				switch {
				case errors.Is(err, ErrMissingToken):
					message = "missing bearer token"
				case errors.Is(err, ErrForbidden):
					status, message = http.StatusForbidden, "caller may not act on this team"
				}

				m.logger.Security().AuthenticationFailure(message)
				m.reject(w, status, message)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithPrincipal(ctx, principal)))
		})
	}
}

func (m *Middleware) reject(w http.ResponseWriter, status int, message string) {
	if err := httptypes.WriteError(w, status, message); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}

// bearerToken only supports the "Bearer <token>" format (RFC 6750)
func bearerToken(r *http.Request) string {
	if header := r.Header.Get("Authorization"); header != "" {
		if !strings.HasPrefix(header, bearerPrefix) {
			return ""
		}
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}

	return r.URL.Query().Get("access_token")
}

func NewMiddleware(verifier TokenVerifierInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		verifier: verifier,
		tracer:   tracer,
		logger:   logger,
	}
}
