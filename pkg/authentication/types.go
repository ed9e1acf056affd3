// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrMissingIssuer = errors.New("issuer is required for JWT authentication")
	ErrMissingToken  = errors.New("missing bearer token")
	ErrForbidden     = errors.New("subject is not allowed to use the team API")
)

// Principal is the authenticated caller of the local API
type Principal struct {
	Subject string
	Scopes  []string
}

func (p *Principal) HasScope(scope string) bool {
	return slices.Contains(p.Scopes, scope)
}

// Policy decides which principals may act on the team.
// With neither subjects nor scope configured only DefaultSubject is let through.
type Policy struct {
	AllowedSubjects []string
	RequiredScope   string
	DefaultSubject  string
}

func (p Policy) Allows(principal *Principal) bool {
	if principal == nil || principal.Subject == "" {
		return false
	}

	if slices.Contains(p.AllowedSubjects, principal.Subject) {
		return true
	}

	if p.RequiredScope != "" && principal.HasScope(p.RequiredScope) {
		return true
	}

	if len(p.AllowedSubjects) == 0 && p.RequiredScope == "" {
		return p.DefaultSubject != "" && principal.Subject == p.DefaultSubject
	}

	return false
}

type claims struct {
	Subject string   `json:"sub"`
	Scope   string   `json:"scope"`
	Scopes  []string `json:"scp"`
}

// principal merges the space separated scope claim with the scp array
func (c claims) principal() *Principal {
	scopes := strings.Fields(c.Scope)
	for _, s := range c.Scopes {
		if !slices.Contains(scopes, s) {
			scopes = append(scopes, s)
		}
	}

	return &Principal{Subject: c.Subject, Scopes: scopes}
}
