package layout

import (
	"math"
	"time"

	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/ui"
)

// Tick is a single tick mark of the ruler.
type Tick struct {
	Time  int64
	Pixel float64
	// Key is set for ticks on a whole hour.
	Key bool
}

// TickRenderer draws a tick.
type TickRenderer interface {
	DrawTick(Tick)
}

// TickRendererFunc adapts a function to a TickRenderer.
type TickRendererFunc func(Tick)

// DrawTick calls f.
func (f TickRendererFunc) DrawTick(t Tick) { f(t) }

const hourMillis = int64(time.Hour / time.Millisecond)

// TickSequence lazily produces the ticks visible in a viewport, walking
// backward from the cursor line to the viewport start, then forward from the
// cursor line to the viewport end.
//
// The backward walk stops before the first tick that would be earlier than
// the domain start. The forward walk stops after the first tick later than
// the domain end, i.E. that tick is still produced.
type TickSequence struct {
	domain model.TimeDomain
	mapper ui.Mapper
	space  float64

	backwardTime  int64
	backwardPixel float64
	backwardCount int

	forwardTime  int64
	forwardPixel float64
	forwardCount int

	i       int
	forward bool
	done    bool
}

// NewTickSequence constructs the tick sequence for a viewport of the given
// main-axis extent.
func NewTickSequence(domain model.TimeDomain, mapper ui.Mapper, extent float64) *TickSequence {
	space := mapper.TickSpacePixel(domain.Unit)

	frontOffset := (mapper.CursorTime - domain.Start) % domain.Unit
	if frontOffset < 0 {
		frontOffset += domain.Unit
	}

	s := &TickSequence{
		domain: domain,
		mapper: mapper,
		space:  space,

		backwardTime:  mapper.CursorTime - frontOffset,
		backwardPixel: mapper.CursorPixel - float64(frontOffset)*mapper.UnitPixel,
		backwardCount: int(math.Ceil(mapper.CursorPixel / space)),
	}
	s.forwardTime = s.backwardTime + domain.Unit
	s.forwardPixel = s.backwardPixel + space
	s.forwardCount = int(math.Ceil((extent - mapper.CursorPixel) / space))

	return s
}

// Reset restarts the sequence from its first tick.
func (s *TickSequence) Reset() {
	s.i = 0
	s.forward = false
	s.done = false
}

// Next returns the next tick and true, or false once the sequence is
// exhausted.
func (s *TickSequence) Next() (Tick, bool) {
	if s.done {
		return Tick{}, false
	}

	if !s.forward {
		if s.i < s.backwardCount {
			t := s.backwardTime - s.domain.Unit*int64(s.i)
			if t >= s.domain.Start {
				p := s.backwardPixel - s.space*float64(s.i)
				s.i++
				return s.tick(t, p), true
			}
		}
		s.forward = true
		s.i = 0
	}

	if s.i >= s.forwardCount {
		s.done = true
		return Tick{}, false
	}
	t := s.forwardTime + s.domain.Unit*int64(s.i)
	p := s.forwardPixel + s.space*float64(s.i)
	s.i++
	if t > s.domain.End {
		s.done = true
	}
	return s.tick(t, p), true
}

func (s *TickSequence) tick(t int64, p float64) Tick {
	return Tick{Time: t, Pixel: p, Key: (t-s.domain.Start)%hourMillis == 0}
}

// Collect returns all remaining ticks.
func (s *TickSequence) Collect() []Tick {
	var ticks []Tick
	for t, ok := s.Next(); ok; t, ok = s.Next() {
		ticks = append(ticks, t)
	}
	return ticks
}

// Render restarts the sequence and hands every tick to the renderer.
func (s *TickSequence) Render(r TickRenderer) {
	s.Reset()
	for t, ok := s.Next(); ok; t, ok = s.Next() {
		r.DrawTick(t)
	}
}
