// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package remote

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrMissingTokenURL = errors.New("either a token URL or an issuer URL is required for client credentials")

// APIError is a non 2xx answer of the remote authority
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("remote authority returned %d: %s", e.StatusCode, e.Message)
}

// Temporary reports whether retrying the same call may succeed
func (e *APIError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError || e.StatusCode == http.StatusTooManyRequests
}
