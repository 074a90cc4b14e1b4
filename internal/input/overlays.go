package input

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Overlays stacks named modal processors (e.g. "help") over the base key
// map. Only the topmost processor sees keys, and input is captured while any
// overlay is shown, so keys never fall through to the ruler.
type Overlays struct {
	base  Processor
	stack []namedOverlay

	log zerolog.Logger
}

type namedOverlay struct {
	name      string
	processor Processor
}

// NewOverlays returns overlays over the given base processor, none shown.
func NewOverlays(base Processor) *Overlays {
	return &Overlays{
		base: base,
		log:  log.With().Str("component", "input-overlays").Logger(),
	}
}

// Push shows the named overlay on top. A name can be shown only once.
func (o *Overlays) Push(name string, p Processor) error {
	if o.Shown(name) {
		return fmt.Errorf("overlay '%s' already shown", name)
	}
	o.stack = append(o.stack, namedOverlay{name: name, processor: p})
	o.log.Debug().Str("overlay", name).Int("depth", len(o.stack)).Msg("pushed overlay")
	return nil
}

// Pop removes the named overlay and all overlays shown above it.
func (o *Overlays) Pop(name string) error {
	for i := len(o.stack) - 1; i >= 0; i-- {
		if o.stack[i].name == name {
			o.stack = o.stack[:i]
			o.log.Debug().Str("overlay", name).Int("depth", len(o.stack)).Msg("popped overlay")
			return nil
		}
	}
	return fmt.Errorf("overlay '%s' not shown", name)
}

// Shown reports whether the named overlay is on the stack.
func (o *Overlays) Shown(name string) bool {
	for _, e := range o.stack {
		if e.name == name {
			return true
		}
	}
	return false
}

// Top returns the name of the topmost overlay, or "" if none is shown.
func (o *Overlays) Top() string {
	if len(o.stack) == 0 {
		return ""
	}
	return o.stack[len(o.stack)-1].name
}

// CapturesInput is true while an overlay is shown or the active processor
// is in a partial sequence.
func (o *Overlays) CapturesInput() bool {
	return len(o.stack) > 0 || o.base.CapturesInput()
}

// ProcessInput hands the key to the topmost overlay, or the base if none is
// shown.
func (o *Overlays) ProcessInput(key Key) bool {
	return o.active().ProcessInput(key)
}

// GetHelp returns the help of the active processor.
func (o *Overlays) GetHelp() Help {
	return o.active().GetHelp()
}

func (o *Overlays) active() Processor {
	if len(o.stack) > 0 {
		return o.stack[len(o.stack)-1].processor
	}
	return o.base
}
