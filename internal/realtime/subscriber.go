// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package realtime

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/oauth2"

	"github.com/canonical/merchant-team-service/internal/logging"
	"github.com/canonical/merchant-team-service/internal/monitoring"
	"github.com/canonical/merchant-team-service/internal/tracing"
	"github.com/canonical/merchant-team-service/internal/types"
)

// Subscriber keeps a websocket subscription to the remote authority's member events
// and forwards the decoded events. The connection is dialed again after a drop.
type Subscriber struct {
	url            string
	tokens         oauth2.TokenSource
	reconnectDelay time.Duration
	dialer         *websocket.Dialer

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Run forwards events to out until ctx is done
func (s *Subscriber) Run(ctx context.Context, out chan<- types.MemberEvent) error {
	for {
		err := s.session(ctx, out)

		if ctx.Err() != nil {
			return ctx.Err()
		}

		s.available(false)
		s.logger.Warnf("realtime channel dropped, reconnecting in %s: %v", s.reconnectDelay, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.reconnectDelay):
		}
	}
}

func (s *Subscriber) session(ctx context.Context, out chan<- types.MemberEvent) error {
	conn, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	s.available(true)
	s.logger.Infof("subscribed to realtime channel %s", s.url)

	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		conn.Close()
	})
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read from realtime channel: %w", err)
		}

		event, err := DecodeMemberEvent(data)
		if err != nil {
			s.count("unknown", "rejected")
			s.logger.Warnf("skipping realtime message: %v", err)
			continue
		}

		select {
		case out <- event:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Subscriber) dial(ctx context.Context) (*websocket.Conn, error) {
	ctx, span := s.tracer.Start(ctx, "realtime.Subscriber.dial")
	defer span.End()

	header := http.Header{}
	if s.tokens != nil {
		token, err := s.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to obtain token: %w", err)
		}
		token.SetAuthHeader(&http.Request{Header: header})
	}

	conn, resp, err := s.dialer.DialContext(ctx, s.url, header)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("failed to dial %s, status %d: %w", s.url, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("failed to dial %s: %w", s.url, err)
	}

	return conn, nil
}

func (s *Subscriber) available(ok bool) {
	v := 0.0
	if ok {
		v = 1.0
	}
	if err := s.monitor.SetDependencyAvailability(map[string]string{"component": "realtime"}, v); err != nil {
		s.logger.Debugf("error setting dependency availability metric: %s", err)
	}
}

func (s *Subscriber) count(eventType, outcome string) {
	if err := s.monitor.IncRealtimeEvent(map[string]string{"type": eventType, "outcome": outcome}); err != nil {
		s.logger.Debugf("error setting realtime event metric: %s", err)
	}
}

func NewSubscriber(
	url string,
	tokens oauth2.TokenSource,
	reconnectDelay time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*Subscriber, error) {
	if url == "" {
		return nil, ErrMissingURL
	}

	s := new(Subscriber)

	s.url = url
	s.tokens = tokens
	s.reconnectDelay = reconnectDelay
	s.dialer = &websocket.Dialer{
		Proxy:            http.ProxyFromEnvironment,
		HandshakeTimeout: 30 * time.Second,
	}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s, nil
}
