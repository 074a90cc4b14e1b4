package panes

import (
	"math"

	"github.com/ja-he/timeruler/internal/ui"
)

// Geometry splits the screen into the ruler, cards and status areas.
//
// The status bar takes the bottom row. In the remaining area the main (time)
// axis always starts at the screen origin, so main-axis pixels of a mapper
// are screen coordinates as well. Across the main axis the ruler lies on one
// side of the baseline and the cards on the other: left and right for a
// vertical ruler, below and above for a horizontal one.
type Geometry struct {
	Orientation      ui.Orientation
	BaselineFraction float64
	Screen           func() (x, y, w, h int)
}

func (g *Geometry) area() (w, h int) {
	_, _, w, h = g.Screen()
	return w, max(h-1, 0)
}

// Extent returns the main-axis extent of the ruler viewport in cells.
func (g *Geometry) Extent() float64 {
	w, h := g.area()
	if g.Orientation == ui.Horizontal {
		return float64(w)
	}
	return float64(h)
}

// Baseline returns the cross-axis cell coordinate of the baseline.
// The fraction is measured from the ruler's side of the screen.
func (g *Geometry) Baseline() float64 {
	w, h := g.area()
	if g.Orientation == ui.Horizontal {
		return float64(h) - math.Round(g.BaselineFraction*float64(h))
	}
	return math.Round(g.BaselineFraction * float64(w))
}

// RulerDims returns the dimensions of the ruler pane.
func (g *Geometry) RulerDims() (x, y, w, h int) {
	aw, ah := g.area()
	b := int(g.Baseline())
	if g.Orientation == ui.Horizontal {
		return 0, b, aw, ah - b
	}
	return 0, 0, b, ah
}

// CardsDims returns the dimensions of the cards pane.
func (g *Geometry) CardsDims() (x, y, w, h int) {
	aw, ah := g.area()
	b := int(g.Baseline())
	if g.Orientation == ui.Horizontal {
		return 0, 0, aw, b
	}
	return b, 0, aw - b, ah
}

// StatusDims returns the dimensions of the status bar.
func (g *Geometry) StatusDims() (x, y, w, h int) {
	_, _, w, h = g.Screen()
	return 0, h - 1, w, 1
}

// MainCell returns the main-axis cell of a screen position.
func (g *Geometry) MainCell(x, y int) int {
	if g.Orientation == ui.Horizontal {
		return x
	}
	return y
}

// cellBox converts a rectangle in fractional cell coordinates to the cells it
// touches, at least one in each direction.
func cellBox(r ui.Rect) (x, y, w, h int) {
	x, y = int(math.Floor(r.Left)), int(math.Floor(r.Top))
	right, bottom := int(math.Ceil(r.Right)), int(math.Ceil(r.Bottom))
	return x, y, max(right-x, 1), max(bottom-y, 1)
}
