// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Sync() error

	Security() SecurityLoggerInterface
}

// SecurityLoggerInterface records events relevant for auditing access to the team surface.
type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AuthenticationFailure(reason string)
	AuthzFailure(subject, resource string)
	PermissionChanged(subject, role string)
}
