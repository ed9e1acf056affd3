// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/merchant-team-service/internal/types"
)

// EventHandlerInterface applies member events to the team cache.
// It is a subset of the pkg/team reconciler.
type EventHandlerInterface interface {
	Handle(ctx context.Context, event types.MemberEvent) error
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleTeamEvent(ctx context.Context, payload []byte) error
}
