// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package remote

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// Credentials selects how calls to the remote authority are authenticated.
// Client credentials take precedence over a static token.
type Credentials struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	IssuerURL    string
	Scopes       []string

	StaticToken string
}

// TokenSource returns nil when no credentials are configured
func TokenSource(ctx context.Context, creds Credentials) (oauth2.TokenSource, error) {
	if creds.ClientID != "" {
		tokenURL := creds.TokenURL
		if tokenURL == "" {
			if creds.IssuerURL == "" {
				return nil, ErrMissingTokenURL
			}

			provider, err := oidc.NewProvider(ctx, creds.IssuerURL)
			if err != nil {
				return nil, fmt.Errorf("failed to discover token endpoint: %w", err)
			}
			tokenURL = provider.Endpoint().TokenURL
		}

		config := &clientcredentials.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			TokenURL:     tokenURL,
			Scopes:       creds.Scopes,
		}

		return oauth2.ReuseTokenSource(nil, config.TokenSource(ctx)), nil
	}

	if creds.StaticToken != "" {
		return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.StaticToken, TokenType: "Bearer"}), nil
	}

	return nil, nil
}

// NewHTTPClient authenticates every request with ts when it is not nil
func NewHTTPClient(ts oauth2.TokenSource, base http.RoundTripper, timeout time.Duration) *http.Client {
	if base == nil {
		base = http.DefaultTransport
	}

	transport := base
	if ts != nil {
		transport = &oauth2.Transport{Source: ts, Base: base}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
