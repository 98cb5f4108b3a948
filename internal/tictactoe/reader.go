package tictactoe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// LineReader - supplies one line of player input per call.
type LineReader interface {
	ReadLine() (string, error)
}

type bufferedReader struct {
	reader *bufio.Reader
}

// NewLineReader - adapts a stream to LineReader. Lines may be of any length.
func NewLineReader(r io.Reader) LineReader {
	return &bufferedReader{reader: bufio.NewReader(r)}
}

// ReadLine - returns the next line without its terminator. End of input and read
// failures both come back wrapped in apperror.ErrInputClosed.
func (that *bufferedReader) ReadLine() (string, error) {
	line, err := that.reader.ReadString('\n')

	// a last line without a terminator is still a line
	if err == nil || (errors.Is(err, io.EOF) && line != "") {
		return strings.TrimRight(line, "\r\n"), nil
	}

	return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
}
