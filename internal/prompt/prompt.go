// Package prompt collects menu selections and validated input from the user.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/emptrack/pkg/types"
)

// Prompt errors.
var (
	// ErrAborted is returned when input ends (Ctrl-D) or is interrupted
	// (Ctrl-C) while a prompt is waiting.
	ErrAborted = errors.New("prompt aborted")
	// ErrNoChoices is returned by Select when there is nothing to choose.
	ErrNoChoices = errors.New("no choices available")
)

// Prompter blocks until the user answers. Implementations must not cache
// anything between calls; callers pass fresh choices every time.
type Prompter interface {
	// Select shows labels in order and returns the index of the chosen one.
	Select(message string, labels []string) (int, error)
	// Input reads a line, re-asking until validate accepts it.
	Input(message string, validate func(string) error) (string, error)
	// Confirm asks a yes/no question. An empty answer returns def.
	Confirm(message string, def bool) (bool, error)
}

// LineReader reads one line of input after showing a prompt.
// *readline.Instance satisfies it.
type LineReader interface {
	SetPrompt(prompt string)
	Readline() (string, error)
}

// Lines is a Prompter that renders choices as a numbered list and reads
// answers one line at a time.
type Lines struct {
	in  LineReader
	out io.Writer
}

// NewLines returns a Prompter reading from in and writing prompts to out.
func NewLines(in LineReader, out io.Writer) *Lines {
	return &Lines{in: in, out: out}
}

// Select implements Prompter.
func (l *Lines) Select(message string, labels []string) (int, error) {
	if len(labels) == 0 {
		return 0, ErrNoChoices
	}

	fmt.Fprintln(l.out, message)
	for i, label := range labels {
		fmt.Fprintf(l.out, "  %d) %s\n", i+1, label)
	}

	prompt := fmt.Sprintf("Choose [1-%d]: ", len(labels))
	for {
		line, err := l.read(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= len(labels) {
			return n - 1, nil
		}
		fmt.Fprintf(l.out, "Please enter a number between 1 and %d.\n", len(labels))
	}
}

// Input implements Prompter.
func (l *Lines) Input(message string, validate func(string) error) (string, error) {
	for {
		line, err := l.read(message + " ")
		if err != nil {
			return "", err
		}
		if validate == nil {
			return line, nil
		}
		if err := validate(line); err != nil {
			fmt.Fprintf(l.out, ">> %s\n", err)
			continue
		}
		return line, nil
	}
}

// Confirm implements Prompter.
func (l *Lines) Confirm(message string, def bool) (bool, error) {
	hint := "(y/N)"
	if def {
		hint = "(Y/n)"
	}
	for {
		line, err := l.read(message + " " + hint + " ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(l.out, `Please answer "y" or "n".`)
	}
}

func (l *Lines) read(prompt string) (string, error) {
	l.in.SetPrompt(prompt)
	line, err := l.in.Readline()
	if err != nil {
		if isAbort(err) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return line, nil
}

// NonEmpty validates a free-text field.
func NonEmpty(s string) error {
	_, err := types.ValidateName(s)
	return err
}

// PositiveNumber validates a salary field.
func PositiveNumber(s string) error {
	_, err := types.ParseSalary(s)
	return err
}
