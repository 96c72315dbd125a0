// Package appstate assembles the demo slices into one composite state with
// a single composed reducer.
package appstate

import (
	"github.com/headgate/sluice"
	"github.com/headgate/sluice/internal/content"
	"github.com/headgate/sluice/internal/settings"
	"github.com/headgate/sluice/internal/user"
)

// AppState is the composite application state, one field per slice. Slices
// never read each other's fields; adding a slice means adding a field here
// and one entry in Reducer.
type AppState struct {
	User     user.State
	Settings settings.State
	Content  content.State
}

// Reducer composes the slice reducers over AppState. Every dispatched
// action reaches every slice; each slice recognizes its own actions and
// leaves the rest alone.
func Reducer() sluice.ReducerFunc[AppState] {
	return sluice.Compose(
		sluice.Field(
			func(s AppState) user.State { return s.User },
			func(s AppState, sub user.State) AppState { s.User = sub; return s },
			user.Reducer(),
		),
		sluice.Field(
			func(s AppState) settings.State { return s.Settings },
			func(s AppState, sub settings.State) AppState { s.Settings = sub; return s },
			settings.Reducer(),
		),
		sluice.Field(
			func(s AppState) content.State { return s.Content },
			func(s AppState, sub content.State) AppState { s.Content = sub; return s },
			content.Reducer(),
		),
	)
}

// NewStore returns a store over the composite state.
func NewStore(initial AppState) (*sluice.Store[AppState], error) {
	return sluice.New(initial, Reducer())
}
