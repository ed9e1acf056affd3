// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/realtime"
	"github.com/canonical/merchant-team-service/pkg/team"
)

const (
	SecretHeader = "X-Webhook-Secret"

	maxPayload = 1 << 20
)

type API struct {
	service ServiceInterface
	secret  string
	logger  logging.LoggerInterface
}

// NewAPI builds the webhook endpoints, an empty secret accepts every caller
func NewAPI(service ServiceInterface, secret string, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		secret:  secret,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/webhooks/team-events", a.teamEvents)
}

func (a *API) teamEvents(w http.ResponseWriter, r *http.Request) {
	if a.secret != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(SecretHeader)), []byte(a.secret)) != 1 {
		a.logger.Security().AuthenticationFailure("invalid webhook secret")
		http.Error(w, "Invalid webhook secret", http.StatusUnauthorized)
		return
	}

	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayload))
	if err != nil {
		a.logger.Errorf("failed to read webhook body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err = a.service.HandleTeamEvent(r.Context(), payload)

	switch {
	case err == nil:
		w.WriteHeader(http.StatusOK)
	case errors.Is(err, realtime.ErrUnknownEvent):
		// resending an event type this service does not know will not help
		a.logger.Warnf("ignoring webhook: %v", err)
		w.WriteHeader(http.StatusAccepted)
	case errors.Is(err, realtime.ErrMalformedEvent), errors.Is(err, team.ErrInvalidMember):
		a.logger.Errorf("rejecting webhook: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		a.logger.Errorf("failed to handle webhook: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
