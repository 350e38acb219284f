package menu

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LineReader reads one line of input after showing a label.
type LineReader interface {
	Prompt(ctx context.Context, label string) (string, error)
}

// LineSelector is the line-based selector used when stdin is not a terminal.
//
// Each round prints the numbered options with the cursor marker and reads one
// answer: a 1-based number picks that option, "u"/"k" and "d"/"j" move the
// cursor, and an empty answer confirms the highlighted option.
type LineSelector struct {
	reader LineReader
	out    io.Writer
	theme  Theme
}

// NewLineSelector creates a LineSelector that reads answers through r.
func NewLineSelector(r LineReader, out io.Writer, theme Theme) *LineSelector {
	return &LineSelector{reader: r, out: out, theme: theme}
}

// Select prints the menu and reads answers until one resolves to an option.
func (s *LineSelector) Select(ctx context.Context, title string, options []string) (int, error) {
	cursor, err := NewCursor(len(options))
	if err != nil {
		return -1, err
	}

	label := fmt.Sprintf("Choice [1-%d, u/d to move, enter to confirm]: ", len(options))
	for {
		s.render(title, options, cursor)

		answer, err := s.reader.Prompt(ctx, label)
		if err != nil {
			return -1, err
		}

		switch a := strings.ToLower(strings.TrimSpace(answer)); a {
		case "":
			return cursor.Index(), nil
		case "u", "k", "up":
			cursor.Up()
		case "d", "j", "down":
			cursor.Down()
		default:
			n, convErr := strconv.Atoi(a)
			if convErr == nil && n >= 1 && n <= len(options) {
				return n - 1, nil
			}
			_, _ = fmt.Fprintf(s.out, "Invalid choice %q, try again.\n", answer)
		}
	}
}

func (s *LineSelector) render(title string, options []string, cursor *Cursor) {
	if title != "" {
		_, _ = fmt.Fprintln(s.out, s.theme.Title.Render(title))
	}
	for i, opt := range options {
		line := s.theme.option(fmt.Sprintf("%d. %s", i+1, opt), i == cursor.Index())
		_, _ = fmt.Fprintln(s.out, line)
	}
}
