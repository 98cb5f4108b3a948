package tictactoe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type State int

const (
	StateAwaitingMove State = iota
	StateGameOver
)

// GameController - runs a single game between two players sharing one terminal.
type GameController struct {
	logger *slog.Logger
	in     LineReader
	out    io.Writer

	board   entity.Board
	turn    entity.Player
	state   State
	outcome entity.Outcome
	moves   int
}

// NewGameController - creates a game on an empty board with Player 0 to move.
func NewGameController(logger *slog.Logger, in LineReader, out io.Writer) *GameController {
	return &GameController{
		logger:  logger.With("component", "game_controller"),
		in:      in,
		out:     out,
		board:   entity.NewBoard(),
		turn:    entity.Player0,
		state:   StateAwaitingMove,
		outcome: entity.InProgress,
	}
}

func (that *GameController) Board() entity.Board {
	return that.board
}

func (that *GameController) CurrentPlayer() entity.Player {
	return that.turn
}

func (that *GameController) State() State {
	return that.state
}

func (that *GameController) Moves() int {
	return that.moves
}

// Play - runs turns until the game is won or drawn. It returns an error wrapping
// apperror.ErrInputClosed if the input ends first.
func (that *GameController) Play(ctx context.Context) (entity.Outcome, error) {
	if that.state == StateGameOver {
		return that.outcome, apperror.ErrGameFinished
	}

	for that.state == StateAwaitingMove {
		if err := that.playTurn(ctx); err != nil {
			return entity.InProgress, err
		}
	}

	return that.outcome, nil
}

func (that *GameController) playTurn(ctx context.Context) error {
	if err := that.printf("Current game state:\n%s\n", that.board.String()); err != nil {
		return err
	}

	if err := that.printf("%s (%s) turn. Enter row and column (0-2) separated by space:\n", that.turn, that.turn.Symbol()); err != nil {
		return err
	}

	move, err := that.readMove(ctx)
	if err != nil {
		return err
	}

	if err = that.board.Set(move.Row, move.Col, that.turn); err != nil {
		return fmt.Errorf("apply move: %w", err)
	}
	that.moves++

	that.logger.Info("move applied", "player", that.turn.String(), "row", move.Row, "col", move.Col, "move", that.moves)

	if err = that.printf("Current game state:\n%s\n", that.board.String()); err != nil {
		return err
	}

	that.outcome = Evaluate(that.board)
	if !that.outcome.IsTerminal() {
		that.turn = that.turn.Other()
		return nil
	}

	that.state = StateGameOver
	that.logger.Info("game over", "outcome", that.outcome.String(), "moves", that.moves)

	return that.announce()
}

// readMove - asks for lines until one holds a legal move for the current board.
func (that *GameController) readMove(ctx context.Context) (Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return Move{}, fmt.Errorf("read move: %w", err)
		}

		line, err := that.in.ReadLine()
		if err != nil {
			return Move{}, fmt.Errorf("read move: %w", err)
		}

		move, err := ParseMove(line)
		if err == nil && !that.board.IsEmpty(move.Row, move.Col) {
			err = apperror.ErrCellOccupied
		}

		if err == nil {
			return move, nil
		}

		that.logger.Debug("move rejected", "player", that.turn.String(), "input", line, "error", err)

		if err = that.printf("%s\n", RejectionMessage(err)); err != nil {
			return Move{}, err
		}
	}
}

func (that *GameController) announce() error {
	switch that.outcome.Status {
	case entity.StatusWin:
		return that.printf("%s wins!\n", that.outcome.Winner)
	case entity.StatusDraw:
		return that.printf("Draw!\n")
	default:
		return errors.New("announce called before the game ended")
	}
}

func (that *GameController) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(that.out, format, args...); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
