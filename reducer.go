package sluice

// Action describes an intent to change state. Concrete action types are
// declared by the packages that own each state slice; the store and the
// composition helpers never inspect an action's contents.
type Action any

// Reducer computes the next state from the current state and an action.
//
// Implementations must be pure: no I/O, no mutation of the received state,
// and identical inputs always produce identical outputs. A reducer that does
// not recognize an action must return the state unchanged.
type Reducer[S any] interface {
	Reduce(state S, action Action) S
}

// ReducerFunc adapts an ordinary function to the Reducer interface.
type ReducerFunc[S any] func(state S, action Action) S

// Reduce calls f(state, action).
func (f ReducerFunc[S]) Reduce(state S, action Action) S {
	return f(state, action)
}
