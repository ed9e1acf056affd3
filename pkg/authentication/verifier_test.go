// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/go-jose/go-jose/v4"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"
)

const testIssuer = "https://issuer.example.com"

func signToken(t *testing.T, key *rsa.PrivateKey, claims map[string]any) string {
	t.Helper()

	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.RS256, Key: key}, (&jose.SignerOptions{}).WithType("JWT"))
	if err != nil {
		t.Fatalf("failed to create signer: %v", err)
	}

	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("failed to marshal claims: %v", err)
	}

	obj, err := signer.Sign(payload)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	raw, err := obj.CompactSerialize()
	if err != nil {
		t.Fatalf("failed to serialize token: %v", err)
	}

	return raw
}

func TestJWTVerifier_VerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	other, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}

	exp := time.Now().Add(time.Hour).Unix()
	keySet := &oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{&key.PublicKey}}

	tests := []struct {
		name            string
		token           func(*testing.T) string
		policy          Policy
		expectedSubject string
		expectedErr     error
		expectAuthzFail bool
	}{
		{
			name: "current user by default",
			token: func(t *testing.T) string {
				return signToken(t, key, map[string]any{"iss": testIssuer, "sub": "u-self", "exp": exp})
			},
			policy:          Policy{DefaultSubject: "u-self"},
			expectedSubject: "u-self",
		},
		{
			name: "other subject without policy",
			token: func(t *testing.T) string {
				return signToken(t, key, map[string]any{"iss": testIssuer, "sub": "u-2", "exp": exp})
			},
			policy:          Policy{DefaultSubject: "u-self"},
			expectedErr:     ErrForbidden,
			expectAuthzFail: true,
		},
		{
			name: "scope claim grants access",
			token: func(t *testing.T) string {
				return signToken(t, key, map[string]any{"iss": testIssuer, "sub": "svc", "exp": exp, "scope": "openid team:write"})
			},
			policy:          Policy{RequiredScope: "team:write", DefaultSubject: "u-self"},
			expectedSubject: "svc",
		},
		{
			name: "scp claim grants access",
			token: func(t *testing.T) string {
				return signToken(t, key, map[string]any{"iss": testIssuer, "sub": "svc", "exp": exp, "scp": []string{"team:write"}})
			},
			policy:          Policy{RequiredScope: "team:write"},
			expectedSubject: "svc",
		},
		{
			name: "allowed subject",
			token: func(t *testing.T) string {
				return signToken(t, key, map[string]any{"iss": testIssuer, "sub": "ops", "exp": exp})
			},
			policy:          Policy{AllowedSubjects: []string{"ops"}},
			expectedSubject: "ops",
		},
		{
			name: "unknown signing key",
			token: func(t *testing.T) string {
				return signToken(t, other, map[string]any{"iss": testIssuer, "sub": "u-self", "exp": exp})
			},
			policy: Policy{DefaultSubject: "u-self"},
		},
		{
			name: "wrong issuer",
			token: func(t *testing.T) string {
				return signToken(t, key, map[string]any{"iss": "https://evil.example.com", "sub": "u-self", "exp": exp})
			},
			policy: Policy{DefaultSubject: "u-self"},
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return signToken(t, key, map[string]any{"iss": testIssuer, "sub": "u-self", "exp": time.Now().Add(-time.Hour).Unix()})
			},
			policy: Policy{DefaultSubject: "u-self"},
		},
		{
			name:        "empty token",
			token:       func(*testing.T) string { return "" },
			policy:      Policy{DefaultSubject: "u-self"},
			expectedErr: ErrMissingToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.JWTVerifier.VerifyToken").Return(ctx, trace.SpanFromContext(ctx))
			if tt.expectAuthzFail {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure(gomock.Any(), "team_api_access")
			}

			verifier := NewJWTVerifier(oidc.NewVerifier(testIssuer, keySet, verifierConfig()), tt.policy, mockTracer, mockLogger)

			principal, err := verifier.VerifyToken(ctx, tt.token(t))

			if tt.expectedSubject == "" {
				if err == nil {
					t.Fatalf("expected error, got principal %+v", principal)
				}
				if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected error %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if principal.Subject != tt.expectedSubject {
				t.Errorf("expected subject %q, got %q", tt.expectedSubject, principal.Subject)
			}
		})
	}
}

func TestPolicyAllows(t *testing.T) {
	tests := []struct {
		name      string
		policy    Policy
		principal *Principal
		expected  bool
	}{
		{name: "nil principal", policy: Policy{DefaultSubject: "u"}, principal: nil, expected: false},
		{name: "empty subject", policy: Policy{DefaultSubject: ""}, principal: &Principal{}, expected: false},
		{name: "default subject", policy: Policy{DefaultSubject: "u"}, principal: &Principal{Subject: "u"}, expected: true},
		{name: "no default configured", policy: Policy{}, principal: &Principal{Subject: "u"}, expected: false},
		{name: "default ignored when subjects configured", policy: Policy{AllowedSubjects: []string{"ops"}, DefaultSubject: "u"}, principal: &Principal{Subject: "u"}, expected: false},
		{name: "missing scope", policy: Policy{RequiredScope: "team:write"}, principal: &Principal{Subject: "u", Scopes: []string{"openid"}}, expected: false},
		{name: "scope", policy: Policy{RequiredScope: "team:write"}, principal: &Principal{Subject: "u", Scopes: []string{"team:write"}}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.Allows(tt.principal); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestNewJWTAuthenticatorRequiresIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := NewJWTAuthenticator(context.Background(), Config{}, NewMockTracingInterface(ctrl), NewMockLoggerInterface(ctrl))
	if !errors.Is(err, ErrMissingIssuer) {
		t.Errorf("expected %v, got %v", ErrMissingIssuer, err)
	}
}

func TestNewJWTAuthenticatorWithJWKS(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := NewMockLoggerInterface(ctrl)
	logger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()

	v, err := NewJWTAuthenticator(
		context.Background(),
		Config{Issuer: testIssuer, JWKSURL: testIssuer + "/keys"},
		NewMockTracingInterface(ctrl),
		logger,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v == nil {
		t.Fatal("expected verifier")
	}
}
