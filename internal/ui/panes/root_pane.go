package panes

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/input"
	"github.com/ja-he/timeruler/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle and delegating input to its input overlays.
//
// Main panes are drawn first, overlays (log, help, ...) over top of them in
// order, each only while visible.
type RootPane struct {
	ID ui.PaneID

	renderer   ui.RenderOrchestratorControl
	dimensions func() (x, y, w, h int)

	mainPanes []ui.Pane
	overlays  []ui.Pane

	keys *input.Overlays

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// GetPositionInfo returns information on a requested position from the
// topmost visible pane containing it.
func (p *RootPane) GetPositionInfo(x, y int) ui.PositionInfo {
	active := p.activePanesInOrder()
	for i := len(active) - 1; i >= 0; i-- {
		if contains(active[i], x, y) {
			return active[i].GetPositionInfo(x, y)
		}
	}
	return &ui.NoPanePositionInfo{}
}

func contains(pane ui.Pane, px, py int) bool {
	x, y, w, h := pane.Dimensions()
	return px >= x && px < x+w && py >= y && py < y+h
}

func (p *RootPane) activePanesInOrder() []ui.Pane {
	active := make([]ui.Pane, 0, len(p.mainPanes)+len(p.overlays))
	for _, pane := range append(append([]ui.Pane{}, p.mainPanes...), p.overlays...) {
		if pane.IsVisible() {
			active = append(active, pane)
		}
	}
	return active
}

// IsVisible returns true; the root pane is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Draw draws all visible subpanes.
func (p *RootPane) Draw() {
	p.renderer.Clear()
	for _, pane := range p.activePanesInOrder() {
		p.log.Trace().Msgf("drawing %d...", pane.Identify())
		pane.Draw()
	}
	p.renderer.Show()
}

// Identify returns the pane's ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// CapturesInput returns whether input must go to this pane's processors
// first, i.E. while an overlay is shown or a key sequence is partial.
func (p *RootPane) CapturesInput() bool {
	return p.keys.CapturesInput()
}

// ProcessInput hands the key to the topmost overlay or the key map.
// Returns whether the key applied.
func (p *RootPane) ProcessInput(key input.Key) bool {
	applied := p.keys.ProcessInput(key)
	if !applied {
		p.log.Debug().Str("key", key.ToDebugString()).Str("overlay", p.keys.Top()).Msg("input did not apply")
	}
	return applied
}

// PushOverlay shows the named input overlay over all others.
func (p *RootPane) PushOverlay(name string, overlay input.Processor) error {
	return p.keys.Push(name, overlay)
}

// PopOverlay removes the named input overlay and all overlays above it.
func (p *RootPane) PopOverlay(name string) error {
	return p.keys.Pop(name)
}

// GetHelp returns the help of the active input processor.
func (p *RootPane) GetHelp() input.Help {
	return p.keys.GetHelp()
}

// NewRootPane constructs and returns a new RootPane.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	dimensions func() (x, y, w, h int),
	mainPanes []ui.Pane,
	overlays []ui.Pane,
	inputOverlays *input.Overlays,
) *RootPane {
	rootPane := &RootPane{
		ID:         ui.GeneratePaneID(),
		renderer:   renderer,
		dimensions: dimensions,
		mainPanes:  mainPanes,
		overlays:   overlays,
		keys:       inputOverlays,
		log:        log.With().Str("component", "root-pane").Logger(),
	}
	rootPane.log.Trace().Msgf("created root pane with id '%d'", rootPane.Identify())
	return rootPane
}
