// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package team

import (
	"sync"
)

// Store owns the current State. Transitions are applied one at a time so
// readers never observe a partially applied one.
type Store struct {
	mu sync.RWMutex

	state       State
	subscribers map[uint64]chan State
	nextID      uint64
	closed      bool
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state
}

func (s *Store) Apply(events ...Event) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyLocked(events)
}

// Modify lets fn inspect the current state and decide the transitions to apply,
// with no other transition interleaving. Nothing is applied when fn fails.
func (s *Store) Modify(fn func(State) ([]Event, error)) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := fn(s.state)
	if err != nil {
		return s.state, err
	}

	return s.applyLocked(events), nil
}

func (s *Store) applyLocked(events []Event) State {
	prev := s.state.version

	for _, e := range events {
		s.state = Apply(s.state, e)
	}

	if s.state.version != prev {
		s.publishLocked()
	}

	return s.state
}

// Subscribe returns a channel receiving every new state, a slow reader only gets the latest one.
// The returned function unsubscribes and closes the channel.
func (s *Store) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan State, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextID
	s.nextID++
	s.subscribers[id] = ch
	ch <- s.state

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if c, ok := s.subscribers[id]; ok {
			delete(s.subscribers, id)
			close(c)
		}
	}
}

func (s *Store) publishLocked() {
	for _, ch := range s.subscribers {
		select {
		case ch <- s.state:
			continue
		default:
		}

		// drop the stale state the subscriber has not read yet
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- s.state:
		default:
		}
	}
}

// Close closes every subscription, transitions keep being applied afterwards
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true

	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}

func NewStore(initial State) *Store {
	s := new(Store)

	s.state = initial
	s.subscribers = make(map[uint64]chan State)

	return s
}
