package ui

import (
	"fmt"

	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/styling"
)

// Pane is a UI pane.
//
// Panes are arranged in a tree under a root pane, which delegates drawing and
// position queries to its children.
type Pane interface {
	Draw()
	IsVisible() bool
	Dimensions() (x, y, w, h int)
	GetPositionInfo(x, y int) PositionInfo
	Identify() PaneID
}

// PaneType is the type of the bottommost meaningful UI pane.
type PaneType int

const (
	_ PaneType = iota
	// NoPane describes anything that is not on a meaningful UI Pane, perhaps in
	// padding space.
	NoPane
	// RulerPaneType represents the ruler with its ticks.
	RulerPaneType
	// CardsPaneType represents the pane the schedule cards are drawn in.
	CardsPaneType
	// StatusPaneType represents a status pane (or status bar).
	StatusPaneType
)

// ToString returns the name of this pane type as a string, primarily for
// debugging and logging purposes.
func (t PaneType) ToString() string {
	switch t {
	case NoPane:
		return "NoPane"
	case RulerPaneType:
		return "RulerPaneType"
	case CardsPaneType:
		return "CardsPaneType"
	case StatusPaneType:
		return "StatusPaneType"
	}
	return "[UNKNOWN]"
}

// PaneID uniquely identifies a pane. No two panes must ever share a PaneID.
type PaneID uint

// NonePaneID represents "no pane" or "invalid pane". Panes guaranteed to be
// assigned different IDs by GeneratePaneID.
const NonePaneID PaneID = 0

var id = NonePaneID

// GeneratePaneID generates a new unique pane ID.
var GeneratePaneID = func() PaneID {
	id++
	return id
}

// Orientation is the direction of the ruler's main (time) axis.
type Orientation int

const (
	_ Orientation = iota
	// Vertical rulers run time from top to bottom.
	Vertical
	// Horizontal rulers run time from left to right.
	Horizontal
)

// ParseOrientation parses "vertical" or "horizontal".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return 0, fmt.Errorf("unknown orientation '%s'", s)
}

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return "[unknown orientation]"
}

// Rect is a rectangle in (fractional) pixel coordinates.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// StrictlyContains reports whether the point lies inside the rectangle, not
// on its edges.
func (r Rect) StrictlyContains(x, y float64) bool {
	return r.Left < x && x < r.Right && r.Top < y && y < r.Bottom
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

func (r Rect) String() string {
	return fmt.Sprintf("(%.1f,%.1f)-(%.1f,%.1f)", r.Left, r.Top, r.Right, r.Bottom)
}

// RedrawRequester signals that state changed and a render should happen when
// convenient. Multiple requests may be coalesced into one render.
type RedrawRequester func()

// SelectionListener is notified of the schedule a tap selected.
type SelectionListener func(*model.Schedule)

type Renderer interface {
	// Draw a box of the indicated dimensions at the indicated location but
	// limited to the constraint (bounding box) of the renderer.
	// In the case that the box is  not fully contained by the bounding box,
	// it is truncated to fit and drawn at the corrected coordinates with the
	// corrected dimensions.
	DrawBox(x, y, w, h int, style styling.DrawStyling)
	// Draw text within the box described by the given coordinates and dimensions,
	// but limited to the constraint (bounding box) of the renderer.
	DrawText(x, y, w, h int, style styling.DrawStyling, text string)
}

// ConstrainedRenderer is a renderer that is assumed to be constrained to
// certain dimensions, i.E. it does not draw outside of them.
type ConstrainedRenderer interface {
	Renderer

	// Dimensions returns the dimensions of the renderer.
	Dimensions() (x, y, w, h int)
}

// RenderOrchestratorControl is the set of functions of a renderer (e.g.,
// tcell.Screen) that the root pane needs to use to have full control over a
// render cycle. Other panes should not need this access to the renderer.
type RenderOrchestratorControl interface {
	Clear()
	Show()
}

// MouseCursorPos represents the position of a mouse cursor on the UI's
// x-y-plane, which has its origin 0,0 in the top left.
type MouseCursorPos struct {
	X, Y int
}
