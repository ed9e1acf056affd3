// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken checks the signature and claims of a raw JWT and returns the caller it identifies.
	// An error is returned when the token is invalid or the caller may not use the team API.
	VerifyToken(ctx context.Context, rawToken string) (*Principal, error)
}
