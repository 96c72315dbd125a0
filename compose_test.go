package sluice

import (
	"testing"
)

// Minimal two-slice fixture. Slices stay independent on purpose: each
// reducer touches only its own field.
type fixtureState struct {
	Count int
	Label string
}

type bumpCount struct{}

type setLabel string

func reduceCount(state int, action Action) int {
	if _, ok := action.(bumpCount); ok {
		return state + 1
	}
	return state
}

func reduceLabel(state string, action Action) string {
	if l, ok := action.(setLabel); ok {
		return string(l)
	}
	return state
}

func fixtureParts() []Part[fixtureState] {
	return []Part[fixtureState]{
		Field(
			func(s fixtureState) int { return s.Count },
			func(s fixtureState, c int) fixtureState { s.Count = c; return s },
			ReducerFunc[int](reduceCount),
		),
		Field(
			func(s fixtureState) string { return s.Label },
			func(s fixtureState, l string) fixtureState { s.Label = l; return s },
			ReducerFunc[string](reduceLabel),
		),
	}
}

func TestCompose_RoutesActionsToOwningSlice(t *testing.T) {
	reducer := Compose(fixtureParts()...)

	state := fixtureState{Count: 0, Label: "start"}

	state = reducer.Reduce(state, bumpCount{})
	if state.Count != 1 {
		t.Fatalf("Count after bump = %d, want 1", state.Count)
	}
	if state.Label != "start" {
		t.Fatalf("Label changed by count action: %q, want %q", state.Label, "start")
	}

	state = reducer.Reduce(state, setLabel("renamed"))
	if state.Label != "renamed" {
		t.Fatalf("Label after set = %q, want %q", state.Label, "renamed")
	}
	if state.Count != 1 {
		t.Fatalf("Count changed by label action: %d, want 1", state.Count)
	}
}

func TestCompose_UnrecognizedActionIsIdentity(t *testing.T) {
	reducer := Compose(fixtureParts()...)

	before := fixtureState{Count: 3, Label: "kept"}
	after := reducer.Reduce(before, "no slice owns this")
	if after != before {
		t.Fatalf("unrecognized action changed state: %+v, want %+v", after, before)
	}
}

func TestCompose_PartOrderIrrelevant(t *testing.T) {
	parts := fixtureParts()
	forward := Compose(parts[0], parts[1])
	reversed := Compose(parts[1], parts[0])

	actions := []Action{bumpCount{}, setLabel("a"), bumpCount{}, setLabel("b"), bumpCount{}}

	a := fixtureState{}
	b := fixtureState{}
	for _, action := range actions {
		a = forward.Reduce(a, action)
		b = reversed.Reduce(b, action)
	}

	if a != b {
		t.Fatalf("part order changed result: %+v vs %+v", a, b)
	}
	if a.Count != 3 || a.Label != "b" {
		t.Fatalf("composite result = %+v, want Count=3 Label=b", a)
	}
}

func TestCompose_DrivesStore(t *testing.T) {
	store, err := New(fixtureState{}, Compose(fixtureParts()...))
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}

	var published []fixtureState
	store.Subscribe(func(s fixtureState) { published = append(published, s) })

	store.Dispatch(bumpCount{})
	store.Dispatch(setLabel("done"))

	got := store.State()
	if got.Count != 1 || got.Label != "done" {
		t.Fatalf("State() = %+v, want Count=1 Label=done", got)
	}
	if len(published) != 2 {
		t.Fatalf("published %d states, want 2", len(published))
	}
	if published[0] != (fixtureState{Count: 1}) {
		t.Fatalf("published[0] = %+v, want Count=1 Label=\"\"", published[0])
	}
}
