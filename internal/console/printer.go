// Package console holds the terminal-facing collaborators of the builder:
// styled messages, line prompts, and the schema summary table.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/dbscript/internal/menu"
)

// Prompter reads one line of free text from the user.
type Prompter interface {
	Prompt(ctx context.Context, label string) (string, error)
}

// Styles holds the lipgloss styles used for console output.
type Styles struct {
	Banner  lipgloss.Style
	Header  lipgloss.Style
	Prompt  lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles returns the colored palette.
func DefaultStyles() Styles {
	return Styles{
		Banner:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Banner:  plain,
		Header:  plain,
		Prompt:  plain,
		Success: plain,
		Error:   plain,
		Muted:   plain,
	}
}

// MenuTheme derives the menu theme from s.
func (s Styles) MenuTheme() menu.Theme {
	return menu.Theme{
		Title:    s.Header,
		Selected: s.Success.Bold(true),
		Option:   lipgloss.NewStyle(),
		Hint:     s.Muted,
	}
}

// Printer writes styled status messages.
type Printer struct {
	out    io.Writer
	styles Styles
}

// NewPrinter creates a Printer writing to out.
func NewPrinter(out io.Writer, styles Styles) *Printer {
	return &Printer{out: out, styles: styles}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// Styles returns the printer's styles.
func (p *Printer) Styles() Styles {
	return p.styles
}

// Banner prints the startup line.
func (p *Printer) Banner(text string) {
	_, _ = fmt.Fprintln(p.out, p.styles.Banner.Render(text))
}

// Info prints a neutral message.
func (p *Printer) Info(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, fmt.Sprintf(format, args...))
}

// Success prints a confirmation message.
func (p *Printer) Success(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, p.styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Error prints an error message.
func (p *Printer) Error(format string, args ...any) {
	_, _ = fmt.Fprintln(p.out, p.styles.Error.Render(fmt.Sprintf(format, args...)))
}
