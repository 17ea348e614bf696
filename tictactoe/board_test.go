package tictactoe

import (
	"testing"

	"github.com/stretchr/testify/require"

	"solver/searcher"
)

// play builds a board by applying moves in order, X first.
func play(t *testing.T, moves ...Move) Board {
	t.Helper()
	b := NewBoard()
	for _, m := range moves {
		require.Equal(t, None, b.Cell(m.Row, m.Col), "cell already marked")
		b = b.Apply(m)
	}
	return b
}

func legalMoves(b Board) []Move {
	var moves []Move
	for w := range b.Changes() {
		moves = append(moves, w.Change)
	}
	return moves
}

func TestApply(t *testing.T) {
	t.Run("marks the cell and passes the turn", func(t *testing.T) {
		b := NewBoard()
		require.Equal(t, X, b.Turn())

		next := b.Apply(Move{Row: 1, Col: 1})

		require.Equal(t, X, next.Cell(1, 1))
		require.Equal(t, O, next.Turn())
		require.Equal(t, None, b.Cell(1, 1), "the original board must not change")
	})
}

func TestWinner(t *testing.T) {
	t.Run("detects a row", func(t *testing.T) {
		b := play(t, Move{0, 0}, Move{1, 0}, Move{0, 1}, Move{1, 1}, Move{0, 2})
		require.Equal(t, X, b.Winner())
	})

	t.Run("detects a column", func(t *testing.T) {
		b := play(t, Move{0, 0}, Move{0, 1}, Move{1, 0}, Move{1, 1}, Move{2, 2}, Move{2, 1})
		require.Equal(t, O, b.Winner())
	})

	t.Run("detects a diagonal", func(t *testing.T) {
		b := play(t, Move{0, 0}, Move{0, 1}, Move{1, 1}, Move{0, 2}, Move{2, 2})
		require.Equal(t, X, b.Winner())
	})

	t.Run("reports none while the game is open", func(t *testing.T) {
		require.Equal(t, None, NewBoard().Winner())
	})
}

func TestChanges(t *testing.T) {
	t.Run("enumerates every empty cell of a fresh board", func(t *testing.T) {
		require.Len(t, legalMoves(NewBoard()), 9)
	})

	t.Run("excludes marked cells", func(t *testing.T) {
		b := play(t, Move{1, 1}, Move{0, 0})
		moves := legalMoves(b)
		require.Len(t, moves, 7)
		require.NotContains(t, moves, Move{1, 1})
		require.NotContains(t, moves, Move{0, 0})
	})

	t.Run("is empty once a side has won", func(t *testing.T) {
		b := play(t, Move{0, 0}, Move{1, 0}, Move{0, 1}, Move{1, 1}, Move{0, 2})
		require.Empty(t, legalMoves(b))
	})

	t.Run("is empty on a full drawn board", func(t *testing.T) {
		// X O X / X O O / O X X: full, no line.
		b := play(t,
			Move{0, 0}, Move{0, 1}, Move{0, 2},
			Move{1, 1}, Move{1, 0}, Move{1, 2},
			Move{2, 1}, Move{2, 0}, Move{2, 2})
		require.Equal(t, None, b.Winner())
		require.True(t, b.Full())
		require.Empty(t, legalMoves(b))
	})
}

func TestEval(t *testing.T) {
	t.Run("scores wins, losses and open boards", func(t *testing.T) {
		e := Eval{Us: X}
		won := play(t, Move{0, 0}, Move{1, 0}, Move{0, 1}, Move{1, 1}, Move{0, 2})

		require.Equal(t, searcher.Score(1), e.Evaluate(won))
		require.Equal(t, searcher.Score(-1), Eval{Us: O}.Evaluate(won))
		require.Equal(t, searcher.Score(0), e.Evaluate(NewBoard()))
	})

	t.Run("maximizes on our turn and minimizes on theirs", func(t *testing.T) {
		e := Eval{Us: X}
		require.Equal(t, searcher.Maximize, e.Mode(NewBoard()))
		require.Equal(t, searcher.Minimize, e.Mode(NewBoard().Apply(Move{0, 0})))
	})
}
