package tictactoe

import "github.com/rocketscienceinc/tictactoe-cli/internal/entity"

type cellPos struct {
	row, col int
}

// WinLines - lists every line in evaluation order: rows, columns, main diagonal, anti-diagonal.
// When several lines are complete the first one in this order decides the winner.
var WinLines = [][3]cellPos{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Evaluate - classifies the board. It has no side effects.
func Evaluate(board entity.Board) entity.Outcome {
	for _, line := range WinLines {
		a := board[line[0].row][line[0].col]
		b := board[line[1].row][line[1].col]
		c := board[line[2].row][line[2].col]

		if a != entity.Empty && a == b && b == c {
			winner, _ := a.Owner()
			return entity.Win(winner)
		}
	}

	// the game continues until all the squares are full
	if !board.IsFull() {
		return entity.InProgress
	}

	return entity.Draw
}
