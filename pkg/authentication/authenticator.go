// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/tracing"
)

type Config struct {
	Issuer  string
	JWKSURL string

	Policy Policy
}

// NewJWTAuthenticator builds the token verifier for the local API, discovering keys unless JWKSURL is set
func NewJWTAuthenticator(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) (*JWTVerifier, error) {
	if cfg.Issuer == "" {
		return nil, ErrMissingIssuer
	}

	if cfg.JWKSURL != "" {
		logger.Infof("Using JWKS URL %s for issuer %s", cfg.JWKSURL, cfg.Issuer)
		return NewJWTVerifier(NewKeySetVerifier(ctx, cfg.Issuer, cfg.JWKSURL), cfg.Policy, tracer, logger), nil
	}

	logger.Infof("Using OIDC discovery for issuer: %s", cfg.Issuer)

	provider, err := NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to set up JWT authentication: %w", err)
	}

	return NewJWTVerifier(provider.Verifier(verifierConfig()), cfg.Policy, tracer, logger), nil
}
