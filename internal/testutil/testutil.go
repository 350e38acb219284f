// Package testutil provides scripted input sources and a test logger for
// driving the builder without a terminal.
package testutil

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/leapstack-labs/dbscript/internal/menu"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// Selection records one call to ScriptedSelector.Select.
type Selection struct {
	Title   string
	Options []string
}

// ScriptedSelector returns pre-recorded choices in order. Once the script is
// exhausted it returns menu.ErrAborted.
type ScriptedSelector struct {
	Choices []int
	Calls   []Selection
}

// NewScriptedSelector creates a selector that answers with choices.
func NewScriptedSelector(choices ...int) *ScriptedSelector {
	return &ScriptedSelector{Choices: choices}
}

// Select implements menu.Selector.
func (s *ScriptedSelector) Select(_ context.Context, title string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, menu.ErrNoOptions
	}
	s.Calls = append(s.Calls, Selection{Title: title, Options: append([]string(nil), options...)})
	if len(s.Choices) == 0 {
		return -1, menu.ErrAborted
	}
	c := s.Choices[0]
	s.Choices = s.Choices[1:]
	return c, nil
}

// Remaining reports how many choices have not been consumed.
func (s *ScriptedSelector) Remaining() int {
	return len(s.Choices)
}

// ScriptedPrompter returns pre-recorded answers in order. Once the script is
// exhausted it returns menu.ErrAborted.
type ScriptedPrompter struct {
	Answers []string
	Labels  []string
}

// NewScriptedPrompter creates a prompter that answers with answers.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

// Prompt implements console.Prompter.
func (p *ScriptedPrompter) Prompt(_ context.Context, label string) (string, error) {
	p.Labels = append(p.Labels, label)
	if len(p.Answers) == 0 {
		return "", fmt.Errorf("prompt %q: %w", label, menu.ErrAborted)
	}
	a := p.Answers[0]
	p.Answers = p.Answers[1:]
	return a, nil
}

// Remaining reports how many answers have not been consumed.
func (p *ScriptedPrompter) Remaining() int {
	return len(p.Answers)
}
