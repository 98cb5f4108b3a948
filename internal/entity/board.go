package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const BoardSize = 3

const rowSeparator = "-+-+-"

// Cell - the state of one square of the board.
type Cell int

const (
	Empty Cell = iota
	MarkedByPlayer0
	MarkedByPlayer1
)

func (that Cell) String() string {
	switch that {
	case MarkedByPlayer0:
		return "X"
	case MarkedByPlayer1:
		return "O"
	default:
		return " "
	}
}

// Owner - reports which player marked the cell. ok is false for an empty cell.
func (that Cell) Owner() (player Player, ok bool) {
	switch that {
	case MarkedByPlayer0:
		return Player0, true
	case MarkedByPlayer1:
		return Player1, true
	default:
		return Player0, false
	}
}

// Board - a row-major 3x3 grid. The zero value is an empty board.
type Board [BoardSize][BoardSize]Cell

// NewBoard - returns a board with every cell empty.
func NewBoard() Board {
	return Board{}
}

// InBounds - checks that row and col address a cell of the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Get - returns the cell at row, col.
func (that *Board) Get(row, col int) Cell {
	return that[row][col]
}

// Set - marks an empty cell for the player. A cell is never overwritten.
func (that *Board) Set(row, col int, player Player) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrInvalidCell, row, col)
	}

	if that[row][col] != Empty {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that[row][col] = player.Mark()

	return nil
}

// IsEmpty - checks that no player has marked the cell yet.
func (that *Board) IsEmpty(row, col int) bool {
	return that[row][col] == Empty
}

// IsFull - checks that every cell is marked.
func (that *Board) IsFull() bool {
	for _, row := range that {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// String - renders the board as text, each row followed by a newline and
// rows separated by "-+-+-".
func (that *Board) String() string {
	var sb strings.Builder

	for rowIdx, row := range that {
		for colIdx, cell := range row {
			if colIdx > 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')

		if rowIdx < BoardSize-1 {
			sb.WriteString(rowSeparator)
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
