// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"
)

func TestDebugLogger(t *testing.T) {
	l := NewLogger("DEBUG")
	if !l.Desugar().Core().Enabled(-1) {
		t.Error("expected debug level to be enabled")
	}
}

func TestInvalidLevelFallsBackToError(t *testing.T) {
	l := NewLogger("invalid")
	if l.Desugar().Core().Enabled(1) {
		t.Error("expected warn level to be disabled")
	}
	if !l.Desugar().Core().Enabled(2) {
		t.Error("expected error level to be enabled")
	}
}

func TestNoopLoggerSecurity(t *testing.T) {
	l := NewNoopLogger()
	l.Security().SystemStartup()
	l.Security().AuthzFailure("user-1", "team:remove")
	l.Security().PermissionChanged("user-1", "admin")
	l.Security().SystemShutdown()
}
