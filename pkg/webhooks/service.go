// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/realtime"
	"github.com/canonical/merchant-team-service/internal/tracing"
)

type Service struct {
	handler EventHandlerInterface
	tracer  tracing.TracingInterface
	logger  logging.LoggerInterface
}

func NewService(
	handler EventHandlerInterface,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		handler: handler,
		tracer:  tracer,
		logger:  logger,
	}
}

// HandleTeamEvent decodes a pushed member event and hands it to the reconciler
func (s *Service) HandleTeamEvent(ctx context.Context, payload []byte) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTeamEvent")
	defer span.End()

	event, err := realtime.DecodeMemberEvent(payload)
	if err != nil {
		return fmt.Errorf("failed to decode team event: %w", err)
	}

	s.logger.Debugf("Handling %s webhook", event.EventType())

	if err := s.handler.Handle(ctx, event); err != nil {
		return fmt.Errorf("failed to apply %s event: %w", event.EventType(), err)
	}

	return nil
}
