// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"context"
	"fmt"

	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/monitoring"
	"github.com/canonical/merchant-team-service/internal/tracing"
	"github.com/canonical/merchant-team-service/internal/types"
)

var _ EventHandlerInterface = (*Reconciler)(nil)

// Reconciler merges member events pushed by the remote authority into the store.
// Pushed snapshots win over local state, pending operations are left alone.
type Reconciler struct {
	store *Store

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Reconciler) Handle(ctx context.Context, event types.MemberEvent) error {
	_, span := r.tracer.Start(ctx, "team.Reconciler.Handle")
	defer span.End()

	var e Event

	switch ev := event.(type) {
	case types.MemberUpdated:
		if err := validMember(ev.Member); err != nil {
			return r.reject(event, err)
		}
		e = MemberUpserted{Member: ev.Member}
	case types.MemberInvited:
		if err := validMember(ev.Member); err != nil {
			return r.reject(event, err)
		}
		e = MemberUpserted{Member: ev.Member}
	case types.MemberRemoved:
		if ev.ID == "" {
			return r.reject(event, fmt.Errorf("missing id: %w", ErrInvalidMember))
		}
		e = MemberDeleted{ID: ev.ID}
	default:
		return r.reject(event, fmt.Errorf("%T: %w", event, ErrUnsupportedEvent))
	}

	st := r.store.Apply(e)
	r.count(event, "applied")
	r.logger.Debugf("applied %s event, %d members", event.EventType(), st.TotalMembers())

	return nil
}

// Run applies events until the channel closes or ctx is done
func (r *Reconciler) Run(ctx context.Context, events <-chan types.MemberEvent) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := r.Handle(ctx, ev); err != nil {
				r.logger.Warnf("dropping member event: %v", err)
			}
		}
	}
}

func (r *Reconciler) reject(event types.MemberEvent, err error) error {
	r.count(event, "rejected")
	return err
}

func (r *Reconciler) count(event types.MemberEvent, outcome string) {
	eventType := "unknown"
	if event != nil {
		eventType = event.EventType()
	}

	tags := map[string]string{"type": eventType, "outcome": outcome}
	if err := r.monitor.IncRealtimeEvent(tags); err != nil {
		r.logger.Debugf("error setting realtime event metric: %s", err)
	}
}

func NewReconciler(store *Store, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Reconciler {
	r := new(Reconciler)

	r.store = store
	r.tracer = tracer
	r.monitor = monitor
	r.logger = logger

	return r
}
