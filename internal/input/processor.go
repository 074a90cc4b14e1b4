package input

// Processor consumes keys. The key map tree and the overlays stacked over it
// on the root pane (e.g. the help popup) are processors.
type Processor interface {
	// CapturesInput is true while the processor must see the next key first,
	// i.E. during a partial sequence or while a modal overlay is shown.
	CapturesInput() bool

	// ProcessInput returns whether the key applied, i.E. completed or
	// continued a mapped sequence.
	ProcessInput(key Key) bool

	// GetHelp maps the sequences the processor currently accepts to their
	// explanations.
	GetHelp() Help
}
