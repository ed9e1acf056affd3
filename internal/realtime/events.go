// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package realtime

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/canonical/merchant-team-service/internal/types"
)

var (
	ErrUnknownEvent   = errors.New("unknown event type")
	ErrMalformedEvent = errors.New("malformed event")
	ErrMissingURL     = errors.New("realtime URL is required")
)

// Envelope is the frame shared by the websocket channel and the webhook
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type removedPayload struct {
	ID string `json:"id"`
}

// DecodeMemberEvent turns a raw envelope into a member event
func DecodeMemberEvent(data []byte) (types.MemberEvent, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEvent, err)
	}

	return env.MemberEvent()
}

func (e Envelope) MemberEvent() (types.MemberEvent, error) {
	switch e.Type {
	case types.EventMemberUpdated, types.EventMemberInvited:
		var m types.TeamMember
		if err := json.Unmarshal(e.Payload, &m); err != nil {
			return nil, fmt.Errorf("%w: %s payload: %v", ErrMalformedEvent, e.Type, err)
		}
		if e.Type == types.EventMemberInvited {
			return types.MemberInvited{Member: m}, nil
		}
		return types.MemberUpdated{Member: m}, nil
	case types.EventMemberRemoved:
		var p removedPayload
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			return nil, fmt.Errorf("%w: %s payload: %v", ErrMalformedEvent, e.Type, err)
		}
		return types.MemberRemoved{ID: p.ID}, nil
	default:
		return nil, fmt.Errorf("%q: %w", e.Type, ErrUnknownEvent)
	}
}

// EncodeMemberEvent is the inverse of DecodeMemberEvent
func EncodeMemberEvent(event types.MemberEvent) ([]byte, error) {
	var payload any

	switch e := event.(type) {
	case types.MemberUpdated:
		payload = e.Member
	case types.MemberInvited:
		payload = e.Member
	case types.MemberRemoved:
		payload = removedPayload{ID: e.ID}
	default:
		return nil, fmt.Errorf("%T: %w", event, ErrUnknownEvent)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return json.Marshal(Envelope{Type: event.EventType(), Payload: raw})
}
