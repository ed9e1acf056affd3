// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"cmp"
	"slices"
	"sync"
)

type OperationKind string

const (
	OperationInvite       OperationKind = "invite"
	OperationUpdateRole   OperationKind = "update-role"
	OperationUpdateStatus OperationKind = "update-status"
	OperationRemove       OperationKind = "remove"
	OperationResend       OperationKind = "resend-invitation"
)

// OperationKey identifies a mutation by kind and target member.
// Invites target the temporary id of the optimistic record.
type OperationKey struct {
	Kind     OperationKind `json:"kind"`
	TargetID string        `json:"target_id"`
}

func (k OperationKey) String() string {
	return string(k.Kind) + "-" + k.TargetID
}

// Tracker holds the operations between their optimistic application and their settlement.
// Keys are counted, a key stays pending until every operation started with it is done.
type Tracker struct {
	mu       sync.RWMutex
	inflight map[OperationKey]int
}

func (t *Tracker) Begin(key OperationKey) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.inflight[key]++
}

func (t *Tracker) Done(key OperationKey) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inflight[key] <= 1 {
		delete(t.inflight, key)
		return
	}
	t.inflight[key]--
}

func (t *Tracker) IsPending(key OperationKey) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.inflight[key] > 0
}

// IsMemberPending reports whether any operation targets the member
func (t *Tracker) IsMemberPending(id string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for k := range t.inflight {
		if k.TargetID == id {
			return true
		}
	}
	return false
}

// Pending lists the pending keys sorted by kind then target
func (t *Tracker) Pending() []OperationKey {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys := make([]OperationKey, 0, len(t.inflight))
	for k := range t.inflight {
		keys = append(keys, k)
	}

	slices.SortFunc(keys, func(a, b OperationKey) int {
		return cmp.Or(cmp.Compare(a.Kind, b.Kind), cmp.Compare(a.TargetID, b.TargetID))
	})

	return keys
}

func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.inflight)
}

func NewTracker() *Tracker {
	return &Tracker{inflight: make(map[OperationKey]int)}
}
