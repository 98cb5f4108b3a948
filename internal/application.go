package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

// RunApp - plays one game reading moves from in and drawing the board to out.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app", "session", uuid.NewString())

	log.Info("Starting game", "log_level", conf.LogLevel)

	controller := tictactoe.NewGameController(log, tictactoe.NewLineReader(in), out)

	outcome, err := controller.Play(ctx)
	if err != nil {
		log.Error("Game aborted", "error", err, "moves", controller.Moves())
		return fmt.Errorf("game aborted: %w", err)
	}

	log.Info("Game finished", "outcome", outcome.String(), "moves", controller.Moves())

	return nil
}
