package tictactoe

import "solver/searcher"

// Eval scores finished boards from Us's perspective: +1 for a win, -1 for a
// loss, 0 otherwise. Mode alternates with the side to move, so opponent
// plies minimize Us's score. Tic-tac-toe's full tree is small enough to
// search exhaustively.
type Eval struct {
	searcher.Exhaustive[Board]
	Us Player
}

func (e Eval) Evaluate(b Board) searcher.Score {
	switch b.Winner() {
	case e.Us:
		return 1
	case None:
		return 0
	default:
		return -1
	}
}

func (e Eval) Mode(b Board) searcher.Mode {
	if b.Turn() == e.Us {
		return searcher.Maximize
	}
	return searcher.Minimize
}

// Solver is the board-concrete solver type.
type Solver = searcher.Solver[Board, Move, searcher.Score]

// NewSolver builds a solver for board driven by the given evaluator.
func NewSolver(e searcher.Evaluator[Board, Move, searcher.Score], board Board, options ...searcher.Option[Board, Move, searcher.Score]) *Solver {
	return searcher.New(e, board, options...)
}
