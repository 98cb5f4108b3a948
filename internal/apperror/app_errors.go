package apperror

import "errors"

var (
	ErrGameFinished    = errors.New("game is already finished")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrInvalidCell     = errors.New("cell is out of the board")
	ErrInvalidRow      = errors.New("invalid row number")
	ErrInvalidColumn   = errors.New("invalid column number")
	ErrWrongTokenCount = errors.New("expected two numbers")
	ErrInputClosed     = errors.New("input stream closed")
)
