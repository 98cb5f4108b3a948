package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	t.Run("Valid moves", func(t *testing.T) {
		tests := map[string]Move{
			"0 0":      {Row: 0, Col: 0},
			"2 1":      {Row: 2, Col: 1},
			"  1\t2  ": {Row: 1, Col: 2},
			"1 0\r":    {Row: 1, Col: 0},
			"+1 2":     {Row: 1, Col: 2},
			"02 00":    {Row: 2, Col: 0},
		}

		for line, want := range tests {
			got, err := ParseMove(line)
			require.NoError(t, err, "line %q", line)
			assert.Equal(t, want, got, "line %q", line)
		}
	})

	t.Run("Wrong number of tokens", func(t *testing.T) {
		for _, line := range []string{"", "   ", "1", "1 1 1", "a b c"} {
			_, err := ParseMove(line)
			require.ErrorIs(t, err, apperror.ErrWrongTokenCount, "line %q", line)
		}
	})

	t.Run("Invalid row", func(t *testing.T) {
		for _, line := range []string{"a b", "3 0", "-1 0", "-0 0", "-0 -0", "5 1", "1.0 1", "99999999999999999999 0"} {
			_, err := ParseMove(line)
			require.ErrorIs(t, err, apperror.ErrInvalidRow, "line %q", line)
		}
	})

	t.Run("Invalid column", func(t *testing.T) {
		for _, line := range []string{"0 b", "0 3", "1 -1", "0 -0", "2 x"} {
			_, err := ParseMove(line)
			require.ErrorIs(t, err, apperror.ErrInvalidColumn, "line %q", line)
		}
	})
}

func TestRejectionMessage(t *testing.T) {
	assert.Equal(t, "Please enter two numbers separated by space", RejectionMessage(apperror.ErrWrongTokenCount))
	assert.Equal(t, "Invalid row number. Must be 0, 1, or 2", RejectionMessage(apperror.ErrInvalidRow))
	assert.Equal(t, "Invalid column number. Must be 0, 1, or 2", RejectionMessage(apperror.ErrInvalidColumn))
	assert.Equal(t, "That position is already taken. Try again.", RejectionMessage(apperror.ErrCellOccupied))
}
