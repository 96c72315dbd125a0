// Package sluice is a small unidirectional state container: a store holds a
// single state value, pure reducers compute transitions, and observers are
// notified after every dispatch.
//
// # Overview
//
// State changes flow one way. Code that wants to change state describes the
// change as an action and dispatches it; the store's reducer computes the
// next state; subscribers are told about the result. Nothing else writes
// state, so every transition is explicit, inspectable, and reproducible by
// replaying the same actions.
//
//	            Dispatch(action)
//	  caller ───────────────────────┐
//	                                ▼
//	                     ┌─────────────────────┐
//	                     │ next = Reduce(s, a) │
//	                     │ state = next        │
//	                     └─────────────────────┘
//	                                │
//	              notify subscribers(next), in order
//	                                │
//	  caller ◀──────────────────────┘
//	            State() reads the latest value at any time
//
// # Core Types
//
// Action:
//   - Any value describing an intent to change state
//   - Slice packages declare closed action sets; the store never inspects them
//
// Reducer / ReducerFunc:
//   - Pure function from (state, action) to next state
//   - Total: unrecognized actions return the state unchanged
//   - ReducerFunc adapts a plain function, like http.HandlerFunc
//
// Store:
//   - Owns exactly one current state value and one reducer
//   - State, Dispatch, Subscribe are the whole public surface
//
// # Reducer Discipline
//
// Reducers must not mutate the state they receive. A transition that changes
// a slice or map builds a fresh copy and returns a new state value; the old
// value stays valid for whoever still holds it. The store cannot enforce
// this for arbitrary state types, so it is a contract: break it and
// subscribers will observe states changing after publication.
//
// Reducers also must not perform I/O, read clocks, or otherwise depend on
// anything but their two arguments. Effects belong to the caller, before the
// dispatch (compute, then dispatch the result).
//
// # Composition
//
// A composite state is a plain struct with one field per slice. Field binds
// a sub-reducer to one field through a getter and a setter, and Compose
// chains the resulting parts into a single reducer:
//
//	type AppState struct {
//		User    user.State
//		Content content.State
//	}
//
//	reducer := sluice.Compose(
//		sluice.Field(
//			func(s AppState) user.State { return s.User },
//			func(s AppState, u user.State) AppState { s.User = u; return s },
//			sluice.ReducerFunc[user.State](user.Reduce),
//		),
//		sluice.Field(
//			func(s AppState) content.State { return s.Content },
//			func(s AppState, c content.State) AppState { s.Content = c; return s },
//			sluice.ReducerFunc[content.State](content.Reduce),
//		),
//	)
//
// Every part sees every action; slice reducers ignore actions that are not
// theirs. Adding a slice is one struct field and one Field entry, with no
// change to existing slices. Slices must stay independent: a slice reducer
// reads and writes only its own sub-state, which is what makes the part
// order irrelevant.
//
// # Concurrency Model
//
// All Store methods are safe for concurrent use. Two locks divide the work:
//
//   - A dispatch mutex serializes Dispatch end to end, subscriber
//     notification included. One dispatch completes before the next begins,
//     and subscribers observe states in dispatch order.
//   - A readers-writer lock guards the state value and the subscriber list,
//     so State and Subscribe never block behind a slow subscriber callback.
//
// Subscriber callbacks run synchronously on the dispatching goroutine. They
// may call State, Subscribe, or an unsubscribe function, but must not call
// Dispatch: the dispatch mutex is held, so a reentrant dispatch deadlocks.
// Dispatching from a subscriber is a design smell in any case; derive, don't
// cascade.
//
// # Subscriptions
//
// Subscribe registers an observer for every state published after
// registration. By default nothing is delivered at subscription time; a new
// observer reads its starting point from State. WithReplay opts into an
// immediate synchronous delivery of the current state instead, for observers
// that want one code path for "initial" and "changed":
//
//	unsubscribe := store.Subscribe(render, sluice.WithReplay())
//	defer unsubscribe()
//
// Every dispatch publishes exactly one state, even when the reducer returned
// the state unchanged. Deduplicating no-op transitions is the observer's
// business, not the store's.
//
// # Errors
//
// The only construction failure is a nil reducer, reported by New as
// ErrNilReducer. Dispatch has no failure mode: an unrecognized action is an
// identity transition, and a reducer that panics is a programming defect
// that propagates to the dispatching caller unrecovered.
package sluice
