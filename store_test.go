package sluice

import (
	"errors"
	"sync"
	"testing"
)

type addAction int

func sumReduce(state int, action Action) int {
	if n, ok := action.(addAction); ok {
		return state + int(n)
	}
	return state
}

func newSumStore(t *testing.T, initial int) *Store[int] {
	t.Helper()
	s, err := New(initial, ReducerFunc[int](sumReduce))
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	return s
}

func TestNew_NilReducer(t *testing.T) {
	_, err := New[int](0, nil)
	if !errors.Is(err, ErrNilReducer) {
		t.Fatalf("New(nil reducer) error = %v, want ErrNilReducer", err)
	}
}

func TestStore_DispatchFoldsReducer(t *testing.T) {
	s := newSumStore(t, 10)

	actions := []Action{addAction(1), "unrecognized", addAction(2), addAction(4)}
	for _, a := range actions {
		s.Dispatch(a)
	}

	want := 10
	for _, a := range actions {
		want = sumReduce(want, a)
	}
	if got := s.State(); got != want {
		t.Fatalf("State() after %d dispatches = %d, want fold result %d", len(actions), got, want)
	}
	if want != 17 {
		t.Fatalf("fold = %d, want 17", want)
	}
}

func TestStore_PublishesEveryDispatchInOrder(t *testing.T) {
	s := newSumStore(t, 0)

	var published []int
	s.Subscribe(func(state int) {
		published = append(published, state)
	})
	if len(published) != 0 {
		t.Fatalf("published before any dispatch = %v, want none", published)
	}

	s.Dispatch(addAction(1))
	s.Dispatch("unrecognized") // identity transition still publishes
	s.Dispatch(addAction(2))

	want := []int{1, 1, 3}
	if len(published) != len(want) {
		t.Fatalf("published %d states %v, want %d", len(published), published, len(want))
	}
	for i := range want {
		if published[i] != want[i] {
			t.Fatalf("published[%d] = %d, want %d (full: %v)", i, published[i], want[i], published)
		}
	}
}

func TestStore_SubscribeWithReplay(t *testing.T) {
	s := newSumStore(t, 5)

	var published []int
	s.Subscribe(func(state int) {
		published = append(published, state)
	}, WithReplay())

	if len(published) != 1 || published[0] != 5 {
		t.Fatalf("replay published %v, want [5]", published)
	}

	s.Dispatch(addAction(1))
	if len(published) != 2 || published[1] != 6 {
		t.Fatalf("after dispatch published %v, want [5 6]", published)
	}
}

func TestStore_Unsubscribe(t *testing.T) {
	s := newSumStore(t, 0)

	var kept, dropped int
	s.Subscribe(func(int) { kept++ })
	unsubscribe := s.Subscribe(func(int) { dropped++ })

	s.Dispatch(addAction(1))
	unsubscribe()
	unsubscribe() // second call is harmless
	s.Dispatch(addAction(1))
	s.Dispatch(addAction(1))

	if kept != 3 {
		t.Fatalf("remaining subscriber saw %d states, want 3", kept)
	}
	if dropped != 1 {
		t.Fatalf("removed subscriber saw %d states, want 1", dropped)
	}
}

func TestStore_NotifiesInSubscriptionOrder(t *testing.T) {
	s := newSumStore(t, 0)

	var order []string
	s.Subscribe(func(int) { order = append(order, "first") })
	s.Subscribe(func(int) { order = append(order, "second") })

	s.Dispatch(addAction(1))
	s.Dispatch(addAction(1))

	want := []string{"first", "second", "first", "second"}
	if len(order) != len(want) {
		t.Fatalf("notification order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("notification order = %v, want %v", order, want)
		}
	}
}

func TestStore_StateReadableDuringNotification(t *testing.T) {
	s := newSumStore(t, 0)

	s.Subscribe(func(published int) {
		// The published state is already installed when observers run.
		if got := s.State(); got != published {
			t.Fatalf("State() during notification = %d, want published %d", got, published)
		}
	})

	s.Dispatch(addAction(7))
}

func TestStore_SubscribeDuringNotification(t *testing.T) {
	s := newSumStore(t, 0)

	var late []int
	registered := false
	s.Subscribe(func(int) {
		if !registered {
			registered = true
			s.Subscribe(func(state int) {
				late = append(late, state)
			})
		}
	})

	s.Dispatch(addAction(1)) // registers the late observer, which misses this state
	s.Dispatch(addAction(1))

	if len(late) != 1 || late[0] != 2 {
		t.Fatalf("late observer saw %v, want [2]", late)
	}
}

func TestStore_ConcurrentDispatch(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 200

	s := newSumStore(t, 0)

	var notified int
	s.Subscribe(func(int) { notified++ }) // callbacks are serialized by dispatch

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perGoroutine {
				s.Dispatch(addAction(1))
			}
		}()
	}
	wg.Wait()

	if got := s.State(); got != goroutines*perGoroutine {
		t.Fatalf("State() = %d, want %d", got, goroutines*perGoroutine)
	}
	if notified != goroutines*perGoroutine {
		t.Fatalf("subscriber saw %d states, want %d", notified, goroutines*perGoroutine)
	}
}
