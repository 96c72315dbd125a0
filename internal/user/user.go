// Package user implements the session slice: login status and profile
// fields.
package user

import "github.com/headgate/sluice"

// State is the user slice. The zero value is logged out with an empty
// profile.
type State struct {
	LoggedIn bool
	Username string
	Email    string
}

// Action is implemented by every user action; the set is closed to this
// package.
type Action interface {
	userAction()
}

// Login marks the session as logged in under the given name. The password
// rides along in the payload for the caller's benefit and is never stored
// in state.
type Login struct {
	Username string
	Password string
}

// Logout clears the session back to the zero value.
type Logout struct{}

// UpdateProfile replaces both profile fields.
type UpdateProfile struct {
	Username string
	Email    string
}

func (Login) userAction()         {}
func (Logout) userAction()        {}
func (UpdateProfile) userAction() {}

// Reduce applies a user action to s. Payload validation is the caller's
// concern: an empty username is stored as-is.
func Reduce(s State, action sluice.Action) State {
	act, ok := action.(Action)
	if !ok {
		return s
	}

	switch act := act.(type) {
	case Login:
		s.LoggedIn = true
		s.Username = act.Username
	case Logout:
		return State{}
	case UpdateProfile:
		s.Username = act.Username
		s.Email = act.Email
	}
	return s
}

// Reducer adapts Reduce for store construction.
func Reducer() sluice.Reducer[State] {
	return sluice.ReducerFunc[State](Reduce)
}
