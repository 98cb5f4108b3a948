package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunApp(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	conf := &config.Config{LogLevel: "info", LogFormat: "text"}

	t.Run("Plays a game to the end", func(t *testing.T) {
		// Given: moves for a win by player 1 on the middle column
		in := strings.NewReader("0 0\n0 1\n2 2\n1 1\n1 0\n2 1\n")
		out := &bytes.Buffer{}

		// When: the app runs
		err := RunApp(ctx, logger, conf, in, out)

		// Then: the winner is announced
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "Player 1 wins!\n"))
	})

	t.Run("Closed input aborts the game", func(t *testing.T) {
		in := strings.NewReader("1 1\n")
		out := &bytes.Buffer{}

		err := RunApp(ctx, logger, conf, in, out)

		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.NotContains(t, out.String(), "wins!")
	})
}
