package ui

import (
	"math"

	"github.com/ja-he/timeruler/internal/model"
)

// DefaultCursorFraction is the default position of the cursor line as a
// fraction of the viewport extent along the main axis.
const DefaultCursorFraction = 0.3

// Mapper converts between time values (milliseconds) and pixel offsets along
// the main axis, given the cursor line's pixel position, the time value aligned
// with it and the current zoom (pixels per millisecond).
//
// UnitPixel must be positive; the gesture controller guarantees this for the
// mappers it hands out.
type Mapper struct {
	CursorPixel float64
	CursorTime  int64
	UnitPixel   float64
}

// NewMapper constructs a mapper with the cursor line at the given fraction of
// the viewport size.
func NewMapper(viewportSize, cursorFraction float64, cursorTime int64, unitPixel float64) Mapper {
	return Mapper{
		CursorPixel: viewportSize * cursorFraction,
		CursorTime:  cursorTime,
		UnitPixel:   unitPixel,
	}
}

// TimeToPixel returns the pixel offset of the time value.
func (m Mapper) TimeToPixel(t int64) float64 {
	return m.CursorPixel + float64(t-m.CursorTime)*m.UnitPixel
}

// PixelToTime returns the time value at the pixel offset, rounded to the
// nearest millisecond.
func (m Mapper) PixelToTime(p float64) int64 {
	return m.CursorTime + int64(math.Round((p-m.CursorPixel)/m.UnitPixel))
}

// TickSpacePixel returns the pixel distance between ticks unit apart.
func (m Mapper) TickSpacePixel(unit int64) float64 {
	return float64(unit) * m.UnitPixel
}

// DomainLeadPixel returns how many pixels at the start of the viewport lie
// before the domain start (zero if the domain start is not visible).
func (m Mapper) DomainLeadPixel(d model.TimeDomain) float64 {
	return math.Max(0, m.TimeToPixel(d.Start))
}

// DomainTrailPixel returns the pixel offset from which on the viewport of the
// given extent lies after the domain end, and whether there is any such
// region.
func (m Mapper) DomainTrailPixel(d model.TimeDomain, extent float64) (float64, bool) {
	p := m.TimeToPixel(d.End)
	return p, p < extent
}
