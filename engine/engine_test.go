package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"solver/searcher"
	"solver/tictactoe"
)

// scriptedAgent plays a fixed move list and records every commit it observes.
type scriptedAgent struct {
	moves    []tictactoe.Move
	next     int
	observed []tictactoe.Move
}

func (a *scriptedAgent) Act(state tictactoe.Board) (tictactoe.Move, bool) {
	if a.next >= len(a.moves) {
		return tictactoe.Move{}, false
	}
	move := a.moves[a.next]
	a.next++
	return move, true
}

func (a *scriptedAgent) Observe(move tictactoe.Move) {
	a.observed = append(a.observed, move)
}

func TestEngineRun(t *testing.T) {
	t.Run("alternates agents and broadcasts every commit", func(t *testing.T) {
		first := &scriptedAgent{moves: []tictactoe.Move{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}}
		second := &scriptedAgent{moves: []tictactoe.Move{{Row: 1, Col: 0}, {Row: 1, Col: 1}}}
		e := New[tictactoe.Board, tictactoe.Move](tictactoe.NewBoard(), first, second)

		final, history := e.Run()

		want := []tictactoe.Move{
			{Row: 0, Col: 0}, {Row: 1, Col: 0},
			{Row: 0, Col: 1}, {Row: 1, Col: 1},
			{Row: 0, Col: 2},
		}
		require.Equal(t, want, history)
		require.Equal(t, tictactoe.X, final.Winner())
		require.Equal(t, want, first.observed, "every agent sees every commit")
		require.Equal(t, want, second.observed, "every agent sees every commit")
	})

	t.Run("stops immediately when the first agent has no change", func(t *testing.T) {
		empty := &scriptedAgent{}
		e := New[tictactoe.Board, tictactoe.Move](tictactoe.NewBoard(), empty)

		final, history := e.Run()

		require.Empty(t, history)
		require.Equal(t, tictactoe.NewBoard(), final)
	})

	t.Run("a solver agent never loses to a random opponent", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		cache := searcher.NewCache[tictactoe.Board, tictactoe.Move, searcher.Score]()

		for game := 0; game < 20; game++ {
			board := tictactoe.NewBoard()
			x := SolverAgent[tictactoe.Board, tictactoe.Move, searcher.Score]{
				Solver: tictactoe.NewSolver(tictactoe.Eval{Us: tictactoe.X}, board, searcher.WithCache(cache)),
			}
			o := RandomAgent[tictactoe.Board, tictactoe.Move]{Rand: rng}
			e := New[tictactoe.Board, tictactoe.Move](board, x, o)

			final, _ := e.Run()

			require.NotEqual(t, tictactoe.O, final.Winner(),
				"perfect play must not lose, game %d", game)
		}
	})
}
