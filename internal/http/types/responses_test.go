// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		message  string
		expected ErrorResponse
	}{
		{
			name:     "not found",
			status:   http.StatusNotFound,
			message:  "member not found",
			expected: ErrorResponse{Status: http.StatusNotFound, Message: "member not found"},
		},
		{
			name:     "bad gateway",
			status:   http.StatusBadGateway,
			message:  "remote authority unavailable",
			expected: ErrorResponse{Status: http.StatusBadGateway, Message: "remote authority unavailable"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			if err := WriteError(w, test.status, test.message); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if w.Code != test.status {
				t.Errorf("expected status %d, got %d", test.status, w.Code)
			}

			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected json content type, got %s", ct)
			}

			var result ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if !reflect.DeepEqual(result, test.expected) {
				t.Errorf("expected result: %v, got: %v", test.expected, result)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	if err := WriteJSON(w, http.StatusCreated, map[string]string{"id": "u1"}, "created"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}

	var result struct {
		Data    map[string]string `json:"data"`
		Message string            `json:"message"`
		Status  int               `json:"status"`
	}
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result.Data["id"] != "u1" || result.Message != "created" || result.Status != http.StatusCreated {
		t.Errorf("unexpected body %+v", result)
	}
}
