package user

import "testing"

func TestReduce_Login(t *testing.T) {
	s := Reduce(State{}, Login{Username: "alice", Password: "x"})

	if !s.LoggedIn {
		t.Fatal("LoggedIn = false, want true")
	}
	if s.Username != "alice" {
		t.Fatalf("Username = %q, want %q", s.Username, "alice")
	}
	if s.Email != "" {
		t.Fatalf("Email = %q, want empty; login must not touch it", s.Email)
	}
}

func TestReduce_LoginDoesNotStorePassword(t *testing.T) {
	s := Reduce(State{}, Login{Username: "alice", Password: "hunter2"})

	// State has no password field at all; this guards against one being
	// smuggled in through Username or Email.
	if s.Username == "hunter2" || s.Email == "hunter2" {
		t.Fatalf("password leaked into state: %+v", s)
	}
}

func TestReduce_Logout(t *testing.T) {
	s := State{LoggedIn: true, Username: "alice", Email: "alice@example.com"}
	s = Reduce(s, Logout{})

	if s != (State{}) {
		t.Fatalf("state after logout = %+v, want zero value", s)
	}
}

func TestReduce_UpdateProfile(t *testing.T) {
	s := Reduce(State{LoggedIn: true, Username: "alice"}, UpdateProfile{Username: "alice-w", Email: "a@example.com"})

	if s.Username != "alice-w" || s.Email != "a@example.com" {
		t.Fatalf("profile = %q/%q, want alice-w/a@example.com", s.Username, s.Email)
	}
	if !s.LoggedIn {
		t.Fatal("LoggedIn = false, want true; profile update must not log out")
	}
}

func TestReduce_EmptyUsernameAcceptedAsIs(t *testing.T) {
	s := Reduce(State{}, Login{Username: ""})

	if !s.LoggedIn {
		t.Fatal("LoggedIn = false, want true even for empty username")
	}
	if s.Username != "" {
		t.Fatalf("Username = %q, want empty", s.Username)
	}
}

func TestReduce_UnrecognizedActionIsIdentity(t *testing.T) {
	before := State{LoggedIn: true, Username: "alice"}
	after := Reduce(before, 42)

	if after != before {
		t.Fatalf("state changed on unrecognized action: %+v, want %+v", after, before)
	}
}
