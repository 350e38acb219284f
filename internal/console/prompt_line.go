package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"

	"github.com/leapstack-labs/dbscript/internal/menu"
)

// LinePrompter reads answers line by line through readline. It serves plain
// mode and piped stdin.
type LinePrompter struct {
	rl     *readline.Instance
	styles Styles
}

// NewLinePrompter creates a readline-backed prompter. When terminal is false,
// line editing is disabled and input is consumed as-is.
func NewLinePrompter(in io.Reader, out io.Writer, terminal bool, styles Styles) (*LinePrompter, error) {
	cfg := &readline.Config{
		Stdout:                 out,
		Stderr:                 out,
		InterruptPrompt:        "^C",
		DisableAutoSaveHistory: true,
		HistoryLimit:           -1,
	}
	if !terminal {
		cfg.Stdin = io.NopCloser(in)
		cfg.FuncIsTerminal = func() bool { return false }
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize line input: %w", err)
	}
	return &LinePrompter{rl: rl, styles: styles}, nil
}

// Prompt shows label and returns the next line. EOF and Ctrl+C return
// menu.ErrAborted.
func (p *LinePrompter) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.rl.SetPrompt(p.styles.Prompt.Render(label))
	line, err := p.rl.Readline()
	switch {
	case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
		return "", menu.ErrAborted
	case err != nil:
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

// Close releases the terminal.
func (p *LinePrompter) Close() error {
	return p.rl.Close()
}
