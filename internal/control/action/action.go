// Package action provides the actions key mappings resolve to.
package action

import "github.com/rs/zerolog/log"

// Action is something a user input can trigger.
type Action interface {
	Do()
	Explain() string
}

// Func is an action running a plain function, which covers every ruler
// command: scrolling, flinging, zooming, switching days and toggling panes.
// None of these modify schedules, so there is nothing to undo.
type Func struct {
	explanation string
	do          func()
}

// New returns a new action running do, explained as given in the help.
func New(explanation string, do func()) *Func {
	return &Func{explanation: explanation, do: do}
}

// Do runs the action.
func (a *Func) Do() {
	log.Trace().Str("action", a.explanation).Msg("doing action")
	a.do()
}

// Explain returns the help text.
func (a *Func) Explain() string { return a.explanation }
