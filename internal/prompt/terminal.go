package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/ergochat/readline"
)

// Terminal is a Lines prompter backed by an interactive readline session.
type Terminal struct {
	*Lines
	rl *readline.Instance
}

// NewTerminal opens a readline session on the process terminal. Prompts and
// choice lists are written to out.
func NewTerminal(out io.Writer) (*Terminal, error) {
	rl, err := readline.New("? ")
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return &Terminal{Lines: NewLines(rl, out), rl: rl}, nil
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	return t.rl.Close()
}

func isAbort(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}
