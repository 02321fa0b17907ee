// Package selection holds the page-local picker state for the precision and
// crop monitoring pages. Each request decodes its own copy; nothing here is
// shared between pages or requests.
package selection

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidChoice is returned when a value is not one of a control's options.
var ErrInvalidChoice = errors.New("invalid choice")

// Control is a single-choice picker over a fixed option list.
type Control[T comparable] struct {
	Name    string
	Options []T
	Current T
}

func NewControl[T comparable](name string, options []T, initial T) Control[T] {
	if !slices.Contains(options, initial) {
		panic(fmt.Sprintf("selection: %s initial value %v not in options", name, initial))
	}
	return Control[T]{Name: name, Options: options, Current: initial}
}

// Select switches to v. A value outside Options leaves the control unchanged.
func (c *Control[T]) Select(v T) error {
	if !slices.Contains(c.Options, v) {
		return fmt.Errorf("%s: %w: %v", c.Name, ErrInvalidChoice, v)
	}
	c.Current = v
	return nil
}

type Choice[T comparable] struct {
	Value    T
	Selected bool
}

// Choices lists the options in display order with the current one flagged.
func (c Control[T]) Choices() []Choice[T] {
	out := make([]Choice[T], len(c.Options))
	for i, o := range c.Options {
		out[i] = Choice[T]{Value: o, Selected: o == c.Current}
	}
	return out
}
