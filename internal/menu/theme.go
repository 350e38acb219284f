package menu

import "github.com/charmbracelet/lipgloss"

// Marker prefixes the highlighted option.
const Marker = "-> "

// Theme styles a rendered menu.
type Theme struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Option   lipgloss.Style
	Hint     lipgloss.Style
}

// DefaultTheme mirrors the console palette: magenta titles, green highlight.
func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		Option:   lipgloss.NewStyle(),
		Hint:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// PlainTheme renders without any styling.
func PlainTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle(),
		Selected: lipgloss.NewStyle(),
		Option:   lipgloss.NewStyle(),
		Hint:     lipgloss.NewStyle(),
	}
}

func (t Theme) option(label string, highlighted bool) string {
	if highlighted {
		return t.Selected.Render(Marker + label)
	}
	return t.Option.Render("   " + label)
}
