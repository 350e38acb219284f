package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Abort   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Confirm, k.Abort}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// selectModel is the bubbletea model behind TUISelector.
type selectModel struct {
	title   string
	options []string
	cursor  *Cursor
	keys    keyMap
	help    help.Model
	theme   Theme

	chosen  bool
	aborted bool
}

func newSelectModel(title string, options []string, cursor *Cursor, theme Theme) *selectModel {
	return &selectModel{
		title:   title,
		options: options,
		cursor:  cursor,
		keys:    defaultKeyMap(),
		help:    help.New(),
		theme:   theme,
	}
}

func (m *selectModel) Init() tea.Cmd {
	return nil
}

func (m *selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.cursor.Up()
	case key.Matches(keyMsg, m.keys.Down):
		m.cursor.Down()
	case key.Matches(keyMsg, m.keys.Confirm):
		m.chosen = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Abort):
		m.aborted = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *selectModel) View() string {
	// Once finished, clear the menu so the next screen starts clean.
	if m.chosen || m.aborted {
		return ""
	}

	var b strings.Builder
	if m.title != "" {
		b.WriteString(m.theme.Title.Render(m.title))
		b.WriteString("\n\n")
	}
	for i, opt := range m.options {
		b.WriteString(m.theme.option(opt, i == m.cursor.Index()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Hint.Render(m.help.View(m.keys)))
	b.WriteString("\n")
	return b.String()
}

// TUISelector runs an inline bubbletea program per selection.
type TUISelector struct {
	in    io.Reader
	out   io.Writer
	theme Theme
}

// NewTUISelector creates a selector that reads key events from in and renders to out.
func NewTUISelector(in io.Reader, out io.Writer, theme Theme) *TUISelector {
	return &TUISelector{in: in, out: out, theme: theme}
}

// Select runs the menu until the user confirms or aborts.
func (s *TUISelector) Select(ctx context.Context, title string, options []string) (int, error) {
	cursor, err := NewCursor(len(options))
	if err != nil {
		return -1, err
	}

	model := newSelectModel(title, options, cursor, s.theme)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(s.in),
		tea.WithOutput(s.out),
	)

	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return -1, ctx.Err()
		}
		if errors.Is(err, tea.ErrProgramKilled) {
			return -1, ErrAborted
		}
		return -1, fmt.Errorf("menu %q: %w", title, err)
	}

	fm, ok := final.(*selectModel)
	if !ok || fm.aborted || !fm.chosen {
		return -1, ErrAborted
	}
	return fm.cursor.Index(), nil
}
