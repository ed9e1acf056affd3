// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"os"
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
)

func TestEnvSpecDefaults(t *testing.T) {
	t.Setenv("REMOTE_API_URL", "https://api.example.com")
	t.Setenv("CURRENT_USER_ID", "user-1")

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if specs.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", specs.Port)
	}
	if specs.RemoteAPITimeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %s", specs.RemoteAPITimeout)
	}
	if specs.RealtimeReconnectDelay != 5*time.Second {
		t.Errorf("expected default reconnect delay 5s, got %s", specs.RealtimeReconnectDelay)
	}
	if len(specs.CORSOrigins) != 1 || specs.CORSOrigins[0] != "*" {
		t.Errorf("expected wildcard cors origin, got %v", specs.CORSOrigins)
	}
	if specs.AuthenticationEnabled {
		t.Error("expected authentication to be disabled by default")
	}
}

func TestEnvSpecRequired(t *testing.T) {
	t.Setenv("REMOTE_API_URL", "")
	os.Unsetenv("REMOTE_API_URL")
	t.Setenv("CURRENT_USER_ID", "user-1")

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err == nil {
		t.Error("expected an error when REMOTE_API_URL is missing")
	}
}

func TestEnvSpecScopes(t *testing.T) {
	t.Setenv("REMOTE_API_URL", "https://api.example.com")
	t.Setenv("CURRENT_USER_ID", "user-1")
	t.Setenv("OAUTH2_SCOPES", "team:read,team:write")

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(specs.OAuth2Scopes) != 2 || specs.OAuth2Scopes[1] != "team:write" {
		t.Errorf("unexpected scopes %v", specs.OAuth2Scopes)
	}
}
