package console

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/leapstack-labs/dbscript/internal/menu"
)

type promptModel struct {
	label   string
	input   textinput.Model
	styles  Styles
	done    bool
	aborted bool
}

func newPromptModel(label string, styles Styles) *promptModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Focus()
	return &promptModel{label: label, input: ti, styles: styles}
}

func (m *promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *promptModel) View() string {
	label := m.styles.Prompt.Render(m.label)
	if m.done {
		// Leave the answered prompt on screen.
		return label + m.input.Value() + "\n"
	}
	if m.aborted {
		return ""
	}
	return label + m.input.View() + "\n"
}

// TUIPrompter reads free text with a bubbles text input.
type TUIPrompter struct {
	in     io.Reader
	out    io.Writer
	styles Styles
}

// NewTUIPrompter creates a prompter reading keys from in and rendering to out.
func NewTUIPrompter(in io.Reader, out io.Writer, styles Styles) *TUIPrompter {
	return &TUIPrompter{in: in, out: out, styles: styles}
}

// Prompt shows label and returns the entered line. Esc and Ctrl+C return
// menu.ErrAborted.
func (p *TUIPrompter) Prompt(ctx context.Context, label string) (string, error) {
	model := newPromptModel(label, p.styles)
	prog := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := prog.Run()
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", fmt.Errorf("prompt %q: %w", label, err)
	}

	fm, ok := final.(*promptModel)
	if !ok || fm.aborted || !fm.done {
		return "", menu.ErrAborted
	}
	return fm.input.Value(), nil
}
