// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/tracing"
)

var _ TokenVerifierInterface = (*JWTVerifier)(nil)

type JWTVerifier struct {
	verifier *oidc.IDTokenVerifier
	policy   Policy

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, rawToken string) (*Principal, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.JWTVerifier.VerifyToken")
	defer span.End()

	if rawToken == "" {
		return nil, ErrMissingToken
	}

	token, err := v.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}

	var c claims
	if err := token.Claims(&c); err != nil {
		return nil, fmt.Errorf("failed to extract claims: %w", err)
	}

	principal := c.principal()

	if !v.policy.Allows(principal) {
		v.logger.Security().AuthzFailure(principal.Subject, "team_api_access")
		return nil, fmt.Errorf("%s: %w", principal.Subject, ErrForbidden)
	}

	return principal, nil
}

// NewJWTVerifier wraps a verifier obtained from a discovered provider or a key set
func NewJWTVerifier(
	verifier *oidc.IDTokenVerifier,
	policy Policy,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *JWTVerifier {
	v := new(JWTVerifier)

	v.verifier = verifier
	v.policy = policy
	v.tracer = tracer
	v.logger = logger

	return v
}
