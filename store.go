package sluice

import (
	"errors"
	"sync"
)

// ErrNilReducer is returned by New when no reducer is supplied.
var ErrNilReducer = errors.New("sluice: nil reducer")

// Store owns a single state value and evolves it by running dispatched
// actions through its reducer. All methods are safe for concurrent use.
type Store[S any] struct {
	reducer Reducer[S]

	// dispatchMu serializes Dispatch end to end, including subscriber
	// notification, so one dispatch completes before the next begins and
	// subscribers observe states in dispatch order.
	dispatchMu sync.Mutex

	mu    sync.RWMutex
	state S
	subs  []*subscriber[S]
}

type subscriber[S any] struct {
	fn func(S)
}

// New returns a store holding initial and evolving it with reducer.
func New[S any](initial S, reducer Reducer[S]) (*Store[S], error) {
	if reducer == nil {
		return nil, ErrNilReducer
	}
	return &Store[S]{reducer: reducer, state: initial}, nil
}

// State returns the current state. It never blocks behind an in-flight
// dispatch's subscriber notifications.
func (s *Store[S]) State() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch runs action through the reducer, installs the resulting state,
// and then notifies every subscriber with it, in subscription order.
// Every dispatch publishes exactly one state, identity transitions included.
//
// Subscriber callbacks run on the dispatching goroutine. They may read State
// and subscribe or unsubscribe, but must not call Dispatch: a reentrant
// dispatch deadlocks.
func (s *Store[S]) Dispatch(action Action) {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	s.mu.RLock()
	current := s.state
	s.mu.RUnlock()

	next := s.reducer.Reduce(current, action)

	s.mu.Lock()
	s.state = next
	listeners := make([]func(S), len(s.subs))
	for i, sub := range s.subs {
		listeners[i] = sub.fn
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
}

// SubscribeOption adjusts how an observer is registered.
type SubscribeOption func(*subscribeConfig)

type subscribeConfig struct {
	replay bool
}

// WithReplay delivers the state current at subscription time to the observer
// synchronously, before Subscribe returns. Without it the observer sees only
// states published by later dispatches and reads its starting point from
// State.
func WithReplay() SubscribeOption {
	return func(c *subscribeConfig) { c.replay = true }
}

// Subscribe registers fn to be called with every state published after
// registration. The returned function removes the observer; calling it more
// than once is harmless.
func (s *Store[S]) Subscribe(fn func(S), opts ...SubscribeOption) (unsubscribe func()) {
	var cfg subscribeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	sub := &subscriber[S]{fn: fn}

	s.mu.Lock()
	s.subs = append(s.subs, sub)
	current := s.state
	s.mu.Unlock()

	if cfg.replay {
		fn(current)
	}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, candidate := range s.subs {
			if candidate == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
