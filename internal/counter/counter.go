// Package counter implements the counter slice: a running value plus a
// history of values saved on demand.
package counter

import "github.com/headgate/sluice"

// State is the counter slice. The zero value, a counter at zero with no
// history, is the start state.
type State struct {
	Value   int
	History []int
}

// Action is implemented by every counter action. The unexported marker
// keeps the set closed: only this package can add variants.
type Action interface {
	counterAction()
}

// Increment raises the value by one.
type Increment struct{}

// Decrement lowers the value by one.
type Decrement struct{}

// Reset returns the value to zero. History is untouched.
type Reset struct{}

// AddToHistory appends the current value to the history.
type AddToHistory struct{}

func (Increment) counterAction()    {}
func (Decrement) counterAction()    {}
func (Reset) counterAction()        {}
func (AddToHistory) counterAction() {}

// Reduce applies a counter action to s. Any other action returns s
// unchanged.
func Reduce(s State, action sluice.Action) State {
	act, ok := action.(Action)
	if !ok {
		return s
	}

	switch act.(type) {
	case Increment:
		s.Value++
	case Decrement:
		s.Value--
	case Reset:
		s.Value = 0
	case AddToHistory:
		// Copy before appending so prior states never share the array.
		history := make([]int, len(s.History), len(s.History)+1)
		copy(history, s.History)
		s.History = append(history, s.Value)
	}
	return s
}

// Reducer adapts Reduce for store construction.
func Reducer() sluice.Reducer[State] {
	return sluice.ReducerFunc[State](Reduce)
}

// NewStore returns a counter store at the start state.
func NewStore() (*sluice.Store[State], error) {
	return sluice.New(State{}, Reducer())
}
