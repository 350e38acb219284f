// Package menu implements single-choice selection over a list of labels.
//
// A Selector returns the zero-based index of the option the user confirmed.
// The cursor wraps around at both ends of the list.
package menu

import (
	"context"
	"errors"
)

var (
	// ErrNoOptions is returned when a selection is requested over an empty list.
	ErrNoOptions = errors.New("menu requires at least one option")

	// ErrAborted is returned when the user cancels a selection or prompt.
	ErrAborted = errors.New("aborted by user")
)

// Selector asks the user to pick one option.
type Selector interface {
	Select(ctx context.Context, title string, options []string) (int, error)
}

// Cursor tracks the highlighted option over a fixed number of options.
type Cursor struct {
	index int
	size  int
}

// NewCursor returns a cursor positioned on the first of n options.
func NewCursor(n int) (*Cursor, error) {
	if n <= 0 {
		return nil, ErrNoOptions
	}
	return &Cursor{size: n}, nil
}

// Up moves to the previous option, wrapping from the first to the last.
func (c *Cursor) Up() {
	if c.index == 0 {
		c.index = c.size - 1
		return
	}
	c.index--
}

// Down moves to the next option, wrapping from the last to the first.
func (c *Cursor) Down() {
	if c.index == c.size-1 {
		c.index = 0
		return
	}
	c.index++
}

// Index returns the highlighted option.
func (c *Cursor) Index() int {
	return c.index
}

// Len returns the number of options.
func (c *Cursor) Len() int {
	return c.size
}
