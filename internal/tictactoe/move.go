package tictactoe

import (
	"errors"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

// Move - a board position chosen by a player.
type Move struct {
	Row int
	Col int
}

// ParseMove - reads "<row> <col>" from a raw input line. Occupancy is not checked here.
func ParseMove(line string) (Move, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return Move{}, apperror.ErrWrongTokenCount
	}

	row, ok := parseCoord(tokens[0])
	if !ok {
		return Move{}, apperror.ErrInvalidRow
	}

	col, ok := parseCoord(tokens[1])
	if !ok {
		return Move{}, apperror.ErrInvalidColumn
	}

	return Move{Row: row, Col: col}, nil
}

func parseCoord(token string) (int, bool) {
	// a sign is only allowed in front of a positive number
	if strings.HasPrefix(token, "-") {
		return 0, false
	}

	n, err := strconv.Atoi(token)
	if err != nil || n < 0 || n >= entity.BoardSize {
		return 0, false
	}

	return n, true
}

// RejectionMessage - returns the text shown to the player before asking again.
func RejectionMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrWrongTokenCount):
		return "Please enter two numbers separated by space"
	case errors.Is(err, apperror.ErrInvalidRow):
		return "Invalid row number. Must be 0, 1, or 2"
	case errors.Is(err, apperror.ErrInvalidColumn):
		return "Invalid column number. Must be 0, 1, or 2"
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That position is already taken. Try again."
	default:
		return "Invalid move. Try again."
	}
}
