// Package engine runs complete games by alternating agents over a shared
// authoritative state. The engine owns turn order and commit broadcasting;
// what a state or a change means stays with the domain.
package engine

import (
	"github.com/rs/zerolog/log"

	"solver/searcher"
)

// Agent picks changes for the side it plays. Act must not commit anything:
// the engine commits by broadcasting Observe to every agent, the acting one
// included.
type Agent[S searcher.State[S, C], C comparable] interface {
	// Act returns the agent's chosen change for state, or false if the state
	// offers no legal change.
	Act(state S) (C, bool)

	// Observe tells the agent a change was committed to the shared state.
	Observe(change C)
}

type Engine[S searcher.State[S, C], C comparable] struct {
	state  S
	agents []Agent[S, C]
}

func New[S searcher.State[S, C], C comparable](initial S, agents ...Agent[S, C]) *Engine[S, C] {
	if len(agents) == 0 {
		panic("need at least one agent")
	}
	return &Engine[S, C]{state: initial, agents: agents}
}

// Run alternates agents until the one to act reports no legal change, then
// returns the final state and the committed history.
func (e *Engine[S, C]) Run() (S, []C) {
	var history []C
	for turn := 0; ; turn++ {
		agent := e.agents[turn%len(e.agents)]
		change, ok := agent.Act(e.state)
		if !ok {
			log.Info().Int("turns", turn).Msg("no legal change, game over")
			return e.state, history
		}
		e.state = e.state.Apply(change)
		history = append(history, change)
		for _, a := range e.agents {
			a.Observe(change)
		}
		log.Debug().Int("turn", turn).Msgf("committed %v", change)
	}
}

// State is the current authoritative state.
func (e *Engine[S, C]) State() S {
	return e.state
}
