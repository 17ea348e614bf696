package tictactoe

import (
	"iter"
	"strings"

	"solver/searcher"
)

type Player uint8

const (
	None Player = iota
	X
	O
)

func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Other is the opposing mark.
func (p Player) Other() Player {
	switch p {
	case X:
		return O
	case O:
		return X
	default:
		return None
	}
}

// Move places the side to move's mark at (Row, Col).
type Move struct {
	Row, Col int
}

// Board is an immutable tic-tac-toe position: the 3x3 grid plus the side to
// move. It is a comparable value type, so equal positions collapse in the
// solver's cache.
type Board struct {
	cells [3][3]Player
	turn  Player
}

// NewBoard is the empty board with X to move.
func NewBoard() Board {
	return Board{turn: X}
}

func (b Board) Turn() Player { return b.turn }

func (b Board) Cell(row, col int) Player { return b.cells[row][col] }

// Apply places the current mark and passes the turn. The cell must be empty.
func (b Board) Apply(m Move) Board {
	b.cells[m.Row][m.Col] = b.turn
	b.turn = b.turn.Other()
	return b
}

// Changes enumerates every empty cell, row-major, each with weight 1. A won
// or full board yields nothing.
func (b Board) Changes() iter.Seq[searcher.Weighted[Move]] {
	return func(yield func(searcher.Weighted[Move]) bool) {
		if b.Winner() != None {
			return
		}
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				if b.cells[row][col] != None {
					continue
				}
				if !yield(searcher.Weighted[Move]{Weight: 1, Change: Move{Row: row, Col: col}}) {
					return
				}
			}
		}
	}
}

var lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Winner is the mark holding a full line, or None.
func (b Board) Winner() Player {
	for _, line := range lines {
		first := b.cells[line[0].Row][line[0].Col]
		if first == None {
			continue
		}
		if b.cells[line[1].Row][line[1].Col] == first &&
			b.cells[line[2].Row][line[2].Col] == first {
			return first
		}
	}
	return None
}

// Full reports whether every cell is marked.
func (b Board) Full() bool {
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if b.cells[row][col] == None {
				return false
			}
		}
	}
	return true
}

// Over reports whether the game has ended, by a win or a full board.
func (b Board) Over() bool {
	return b.Winner() != None || b.Full()
}

func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("  0 1 2\n")
	for row := 0; row < 3; row++ {
		sb.WriteString(string(rune('0' + row)))
		for col := 0; col < 3; col++ {
			sb.WriteByte(' ')
			sb.WriteString(b.cells[row][col].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
