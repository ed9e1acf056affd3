// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"reflect"
	"testing"
)

func TestTrackerCountsKeys(t *testing.T) {
	tracker := NewTracker()
	key := OperationKey{Kind: OperationUpdateRole, TargetID: "u1"}

	tracker.Begin(key)
	tracker.Begin(key)

	if !tracker.IsPending(key) {
		t.Fatalf("expected %s to be pending", key)
	}

	tracker.Done(key)
	if !tracker.IsPending(key) {
		t.Errorf("expected %s to stay pending until both operations are done", key)
	}

	tracker.Done(key)
	if tracker.IsPending(key) {
		t.Errorf("expected %s to be settled", key)
	}

	if tracker.Len() != 0 {
		t.Errorf("expected no pending operation, got %d", tracker.Len())
	}

	// settling an unknown key is harmless
	tracker.Done(key)
	if tracker.Len() != 0 {
		t.Errorf("expected no pending operation, got %d", tracker.Len())
	}
}

func TestTrackerPendingSorted(t *testing.T) {
	tracker := NewTracker()

	keys := []OperationKey{
		{Kind: OperationUpdateStatus, TargetID: "u2"},
		{Kind: OperationRemove, TargetID: "u3"},
		{Kind: OperationInvite, TargetID: "temp-1"},
		{Kind: OperationRemove, TargetID: "u1"},
	}
	for _, k := range keys {
		tracker.Begin(k)
	}

	expected := []OperationKey{
		{Kind: OperationInvite, TargetID: "temp-1"},
		{Kind: OperationRemove, TargetID: "u1"},
		{Kind: OperationRemove, TargetID: "u3"},
		{Kind: OperationUpdateStatus, TargetID: "u2"},
	}

	if got := tracker.Pending(); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

func TestTrackerIsMemberPending(t *testing.T) {
	tracker := NewTracker()
	tracker.Begin(OperationKey{Kind: OperationRemove, TargetID: "u1"})

	if !tracker.IsMemberPending("u1") {
		t.Errorf("expected u1 to be pending")
	}

	if tracker.IsMemberPending("u2") {
		t.Errorf("expected u2 not to be pending")
	}
}

func TestOperationKeyString(t *testing.T) {
	key := OperationKey{Kind: OperationUpdateRole, TargetID: "u1"}

	if key.String() != "update-role-u1" {
		t.Errorf("unexpected key %s", key)
	}
}
