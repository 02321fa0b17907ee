package widgets

import (
	"fmt"
	"time"
)

// Transition is a declared presentation animation. It is rendered as a CSS
// animation and never feeds back into page or shell state.
type Transition struct {
	Property string
	From     float64
	To       float64
	Duration time.Duration
	Delay    time.Duration
}

// Animation renders the transition as a CSS animation shorthand referencing
// the named keyframes rule, e.g. "animation: fade-in 0.6s ease-out 0.15s both".
func (t Transition) Animation(keyframes string) string {
	return fmt.Sprintf("animation: %s %gs ease-out %gs both", keyframes, t.Duration.Seconds(), t.Delay.Seconds())
}
