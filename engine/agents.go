package engine

import (
	"golang.org/x/exp/rand"

	"solver/searcher"
)

// SolverAgent plays the recommendation of a possibility-tree solver. The
// solver tracks the game through Observe, so its cached subtrees survive
// across turns.
type SolverAgent[S searcher.State[S, C], C comparable, V searcher.Value[V]] struct {
	Solver *searcher.Solver[S, C, V]
}

func (a SolverAgent[S, C, V]) Act(state S) (C, bool) {
	if state != a.Solver.State() {
		panic("solver agent is out of sync with the engine state")
	}
	_, change, ok := a.Solver.Choose()
	return change, ok
}

func (a SolverAgent[S, C, V]) Observe(change C) {
	a.Solver.Select(change)
}

// RandomAgent plays a uniformly random legal change. A baseline opponent.
type RandomAgent[S searcher.State[S, C], C comparable] struct {
	Rand *rand.Rand
}

func (a RandomAgent[S, C]) Act(state S) (C, bool) {
	var changes []C
	for w := range state.Changes() {
		changes = append(changes, w.Change)
	}
	if len(changes) == 0 {
		var zero C
		return zero, false
	}
	return changes[a.Rand.Intn(len(changes))], true
}

func (a RandomAgent[S, C]) Observe(change C) {}
