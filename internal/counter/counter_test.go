package counter

import (
	"testing"
)

func TestReduce_Increment(t *testing.T) {
	s := Reduce(State{}, Increment{})
	if s.Value != 1 {
		t.Fatalf("Value = %d, want 1", s.Value)
	}
	if len(s.History) != 0 {
		t.Fatalf("History = %v, want empty", s.History)
	}
}

func TestReduce_IncrementSaveDecrement(t *testing.T) {
	s := State{}
	s = Reduce(s, Increment{})
	s = Reduce(s, AddToHistory{})
	s = Reduce(s, Decrement{})

	if s.Value != 0 {
		t.Fatalf("Value = %d, want 0", s.Value)
	}
	if len(s.History) != 1 || s.History[0] != 1 {
		t.Fatalf("History = %v, want [1]", s.History)
	}
}

func TestReduce_ResetKeepsHistory(t *testing.T) {
	s := State{Value: 5, History: []int{1, 2}}
	s = Reduce(s, Reset{})

	if s.Value != 0 {
		t.Fatalf("Value = %d, want 0", s.Value)
	}
	if len(s.History) != 2 || s.History[0] != 1 || s.History[1] != 2 {
		t.Fatalf("History = %v, want [1 2]", s.History)
	}
}

func TestReduce_UnrecognizedActionIsIdentity(t *testing.T) {
	before := State{Value: 3, History: []int{1}}
	after := Reduce(before, "not a counter action")

	if after.Value != before.Value || len(after.History) != len(before.History) {
		t.Fatalf("state changed on unrecognized action: %+v, want %+v", after, before)
	}
}

func TestReduce_AddToHistoryDoesNotAliasPriorState(t *testing.T) {
	first := Reduce(State{}, Increment{})
	second := Reduce(first, AddToHistory{})
	third := Reduce(second, AddToHistory{})

	// Growing the newest history must not disturb earlier snapshots.
	if len(second.History) != 1 || second.History[0] != 1 {
		t.Fatalf("second.History = %v, want [1]", second.History)
	}
	if len(third.History) != 2 || third.History[1] != 1 {
		t.Fatalf("third.History = %v, want [1 1]", third.History)
	}
}

func TestNewStore_DispatchScenario(t *testing.T) {
	store, err := NewStore()
	if err != nil {
		t.Fatalf("NewStore() error = %v, want nil", err)
	}

	store.Dispatch(Increment{})
	store.Dispatch(Increment{})
	store.Dispatch(AddToHistory{})
	store.Dispatch(Reset{})

	s := store.State()
	if s.Value != 0 {
		t.Fatalf("Value = %d, want 0", s.Value)
	}
	if len(s.History) != 1 || s.History[0] != 2 {
		t.Fatalf("History = %v, want [2]", s.History)
	}
}
