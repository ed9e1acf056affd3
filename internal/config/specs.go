// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port        int      `envconfig:"port" default:"8080"`
	CORSOrigins []string `envconfig:"cors_origins" default:"*"`

	RemoteAPIURL     string        `envconfig:"remote_api_url" required:"true"`
	RemoteAPITimeout time.Duration `envconfig:"remote_api_timeout" default:"30s"`
	RemoteAPIToken   string        `envconfig:"remote_api_token"`

	OAuth2ClientID     string   `envconfig:"oauth2_client_id"`
	OAuth2ClientSecret string   `envconfig:"oauth2_client_secret"`
	OAuth2TokenURL     string   `envconfig:"oauth2_token_url"`
	OAuth2IssuerURL    string   `envconfig:"oauth2_issuer_url"`
	OAuth2Scopes       []string `envconfig:"oauth2_scopes"`

	RealtimeURL            string        `envconfig:"realtime_url"`
	RealtimeReconnectDelay time.Duration `envconfig:"realtime_reconnect_delay" default:"5s"`
	WebhookSecret          string        `envconfig:"webhook_secret"`

	CurrentUserID string `envconfig:"current_user_id" required:"true"`

	AuthenticationEnabled bool     `envconfig:"authentication_enabled" default:"false"`
	AuthIssuer            string   `envconfig:"auth_issuer"`
	AuthJWKSURL           string   `envconfig:"auth_jwks_url"`
	AuthAllowedSubjects   []string `envconfig:"auth_allowed_subjects"`
	AuthRequiredScope     string   `envconfig:"auth_required_scope"`
}
