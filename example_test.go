package sluice_test

import (
	"fmt"

	"github.com/headgate/sluice"
)

type increment struct{}

type reset struct{}

func counterReduce(state int, action sluice.Action) int {
	switch action.(type) {
	case increment:
		return state + 1
	case reset:
		return 0
	default:
		return state
	}
}

// ExampleStore dispatches a few counter actions and observes every
// published state.
func ExampleStore() {
	store, err := sluice.New(0, sluice.ReducerFunc[int](counterReduce))
	if err != nil {
		panic(err)
	}

	unsubscribe := store.Subscribe(func(state int) {
		fmt.Println("state:", state)
	})
	defer unsubscribe()

	store.Dispatch(increment{})
	store.Dispatch(increment{})
	store.Dispatch(reset{})

	fmt.Println("final:", store.State())
	// Output:
	// state: 1
	// state: 2
	// state: 0
	// final: 0
}

// ExampleCompose routes one action stream through two independent slices of
// a composite state.
func ExampleCompose() {
	type app struct {
		Count int
		Name  string
	}

	type rename string
	nameReduce := func(state string, action sluice.Action) string {
		if r, ok := action.(rename); ok {
			return string(r)
		}
		return state
	}

	reducer := sluice.Compose(
		sluice.Field(
			func(s app) int { return s.Count },
			func(s app, c int) app { s.Count = c; return s },
			sluice.ReducerFunc[int](counterReduce),
		),
		sluice.Field(
			func(s app) string { return s.Name },
			func(s app, n string) app { s.Name = n; return s },
			sluice.ReducerFunc[string](nameReduce),
		),
	)

	store, err := sluice.New(app{Name: "draft"}, reducer)
	if err != nil {
		panic(err)
	}

	store.Dispatch(increment{})
	store.Dispatch(rename("final"))

	s := store.State()
	fmt.Printf("count=%d name=%s\n", s.Count, s.Name)
	// Output:
	// count=1 name=final
}
