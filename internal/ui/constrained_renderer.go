package ui

import "github.com/ja-he/timeruler/internal/styling"

// CR is a constrained renderer.
// It only allows rendering using the underlying renderer within the set
// dimension constraint; requests reaching outside of it are cut to fit and
// requests entirely outside of it are dropped.
type CR struct {
	renderer Renderer

	constraint func() (x, y, w, h int)
}

// NewConstrainedRenderer constructs a renderer limited to the given
// constraint.
func NewConstrainedRenderer(
	renderer Renderer,
	constraint func() (x, y, w, h int),
) *CR {
	return &CR{
		renderer:   renderer,
		constraint: constraint,
	}
}

// Dimensions returns the constraint.
func (r *CR) Dimensions() (x, y, w, h int) {
	return r.constraint()
}

// DrawText draws the given text, within the given dimensions, constrained by
// the set constraint, in the given style.
func (r *CR) DrawText(x, y, w, h int, sty styling.DrawStyling, text string) {
	cx, cy, cw, ch, ok := r.constrain(x, y, w, h)
	if !ok {
		return
	}
	r.renderer.DrawText(cx, cy, cw, ch, sty, text)
}

// DrawBox draws a box of the given dimensions, constrained by the set
// constraint, in the given style.
func (r *CR) DrawBox(x, y, w, h int, sty styling.DrawStyling) {
	cx, cy, cw, ch, ok := r.constrain(x, y, w, h)
	if !ok {
		return
	}
	r.renderer.DrawBox(cx, cy, cw, ch, sty)
}

// constrain intersects the requested box with the constraint; ok is false if
// the intersection is empty.
func (r *CR) constrain(x, y, w, h int) (cx, cy, cw, ch int, ok bool) {
	bx, by, bw, bh := r.constraint()

	left, top := max(x, bx), max(y, by)
	right, bottom := min(x+w, bx+bw), min(y+h, by+bh)
	if right <= left || bottom <= top {
		return 0, 0, 0, 0, false
	}
	return left, top, right - left, bottom - top, true
}
