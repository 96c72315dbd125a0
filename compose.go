package sluice

// Part applies one slice's reducer to a composite state. Parts are built
// with Field and combined with Compose.
type Part[S any] func(state S, action Action) S

// Field binds a slice reducer to a single field of a composite state.
// get extracts the sub-state and set returns a copy of the composite with
// the sub-state replaced; neither may mutate its argument.
func Field[S, Sub any](get func(S) Sub, set func(S, Sub) S, reducer Reducer[Sub]) Part[S] {
	return func(state S, action Action) S {
		return set(state, reducer.Reduce(get(state), action))
	}
}

// Compose combines slice parts into one reducer over the composite state.
// Every part receives the same action; a part whose slice does not recognize
// the action leaves that slice unchanged. Slices must not read or write each
// other's sub-state, which keeps the order of parts irrelevant.
func Compose[S any](parts ...Part[S]) ReducerFunc[S] {
	return func(state S, action Action) S {
		for _, part := range parts {
			state = part(state, action)
		}
		return state
	}
}
