package layout

import (
	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/ui"
)

// CardPosition is the on-screen rectangle of a schedule's card.
type CardPosition struct {
	ui.Rect
	Schedule *model.Schedule
}

// CardRenderer draws a card for a schedule into the given rectangle.
type CardRenderer interface {
	DrawCard(rect ui.Rect, schedule *model.Schedule)
}

// CardRendererFunc adapts a function to a CardRenderer.
type CardRendererFunc func(ui.Rect, *model.Schedule)

// DrawCard calls f.
func (f CardRendererFunc) DrawCard(rect ui.Rect, schedule *model.Schedule) { f(rect, schedule) }

// CardLayout positions schedule cards along the ruler and resolves taps
// against the positions of the most recent layout pass.
//
// Along the main axis a card spans its schedule's mapped start and end; across
// it the card sits Margin away from the Baseline and is Width wide (to the
// right of a vertical ruler's baseline, above a horizontal one's).
type CardLayout struct {
	Orientation ui.Orientation
	Baseline    float64
	Width       float64
	Margin      float64

	positions []CardPosition
}

// NewCardLayout constructs a card layout.
func NewCardLayout(orientation ui.Orientation, baseline, width, margin float64) *CardLayout {
	return &CardLayout{
		Orientation: orientation,
		Baseline:    baseline,
		Width:       width,
		Margin:      margin,
	}
}

// crossExtent returns the card band's extent across the main axis.
func (l *CardLayout) crossExtent() (from, to float64) {
	if l.Orientation == ui.Horizontal {
		to = l.Baseline - l.Margin
		return to - l.Width, to
	}
	from = l.Baseline + l.Margin
	return from, from + l.Width
}

// Band returns the rectangle of the whole card band within a viewport of the
// given main-axis extent.
func (l *CardLayout) Band(extent float64) ui.Rect {
	from, to := l.crossExtent()
	if l.Orientation == ui.Horizontal {
		return ui.Rect{Left: 0, Top: from, Right: extent, Bottom: to}
	}
	return ui.Rect{Left: from, Top: 0, Right: to, Bottom: extent}
}

// Layout computes the card rectangles for the given schedules.
//
// Every schedule is visited in order. Cards lying entirely before
// scrollOrigin or entirely after scrollOrigin+extent on the main axis are
// left out; all others are stored for hit testing and, if renderer is
// non-nil, drawn. The positions of any previous pass are discarded before
// the pass begins.
func (l *CardLayout) Layout(
	mapper ui.Mapper,
	scrollOrigin, extent float64,
	schedules []*model.Schedule,
	renderer CardRenderer,
) []CardPosition {
	l.positions = make([]CardPosition, 0, len(schedules))

	crossFrom, crossTo := l.crossExtent()
	for _, s := range schedules {
		mainFrom := mapper.TimeToPixel(s.Start)
		mainTo := mapper.TimeToPixel(s.End)

		if mainTo < scrollOrigin || mainFrom > scrollOrigin+extent {
			log.Trace().Stringer("schedule", s).Msg("card outside viewport")
			continue
		}

		var rect ui.Rect
		if l.Orientation == ui.Horizontal {
			rect = ui.Rect{Left: mainFrom, Top: crossFrom, Right: mainTo, Bottom: crossTo}
		} else {
			rect = ui.Rect{Left: crossFrom, Top: mainFrom, Right: crossTo, Bottom: mainTo}
		}
		l.positions = append(l.positions, CardPosition{Rect: rect, Schedule: s})
		if renderer != nil {
			renderer.DrawCard(rect, s)
		}
	}

	return l.positions
}

// Positions returns the card positions of the last layout pass.
func (l *CardLayout) Positions() []CardPosition {
	return l.positions
}

// HitTest returns the schedule of the first card (in schedule order) of the
// last layout pass that strictly contains the point, or nil.
func (l *CardLayout) HitTest(x, y float64) *model.Schedule {
	for i := range l.positions {
		if l.positions[i].StrictlyContains(x, y) {
			return l.positions[i].Schedule
		}
	}
	return nil
}
