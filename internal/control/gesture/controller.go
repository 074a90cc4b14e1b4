// Package gesture implements the ruler's gesture state machine: scrolling,
// zooming and flinging the cursor time over a time domain.
package gesture

import (
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/ui"
)

// ZoomLevelHook is invoked on every scale step with the domain and the new
// unit pixel. It may return the domain with a different unit to swap the
// tick granularity.
type ZoomLevelHook func(domain model.TimeDomain, unitPixel float64) model.TimeDomain

// IdentityZoomLevelHook leaves the domain unchanged.
func IdentityZoomLevelHook(domain model.TimeDomain, _ float64) model.TimeDomain { return domain }

// HitTester resolves a point to the schedule whose card contains it.
type HitTester interface {
	HitTest(x, y float64) *model.Schedule
}

// ScaleState is a snapshot of the controller's cursor and zoom state.
type ScaleState struct {
	CursorTime     int64
	UnitPixel      float64
	ScaleRatio     float64
	TickSpacePixel float64
	MinUnitPixel   float64
	MaxUnitPixel   float64
}

func (s ScaleState) String() string {
	return fmt.Sprintf("cursor=%d unitPixel=%g ratio=%g tickSpace=%g", s.CursorTime, s.UnitPixel, s.ScaleRatio, s.TickSpacePixel)
}

// Controller owns the cursor and zoom state for one time domain and mutates it
// in response to gesture events. It is not safe for concurrent use; hosts
// serialize all calls onto one goroutine.
//
// After every call the unit pixel lies within [MinUnitPixel, MaxUnitPixel]
// and the cursor time lies within the domain.
type Controller struct {
	domain model.TimeDomain
	scale  ScaleState

	status         Status
	scrollHappened bool
	scaling        bool

	scroller *Scroller

	zoomLevelHook     ZoomLevelHook
	redraw            ui.RedrawRequester
	hitTester         HitTester
	selectionListener ui.SelectionListener

	cursorFraction float64
}

// NewController constructs a controller with the cursor at the domain start
// and the zoom at its maximum.
//
// The zoom bounds derive from minTickSpace, the minimum number of pixels an
// hour may occupy: the minimum unit pixel is minTickSpace per hour, the
// maximum sixty times that.
func NewController(domain model.TimeDomain, minTickSpace float64) (*Controller, error) {
	if minTickSpace <= 0 {
		return nil, fmt.Errorf("min tick space %g not positive: %w", minTickSpace, model.ErrInvalidConfiguration)
	}
	if domain.Unit <= 0 {
		return nil, fmt.Errorf("domain unit %d not positive: %w", domain.Unit, model.ErrInvalidConfiguration)
	}
	if domain.Start > domain.End {
		return nil, fmt.Errorf("domain %s: %w", domain, model.ErrInvalidDomain)
	}

	minUnitPixel := minTickSpace / float64(time.Hour/time.Millisecond)
	maxUnitPixel := minUnitPixel * 60

	c := &Controller{
		domain: domain,
		scale: ScaleState{
			CursorTime:   domain.Start,
			ScaleRatio:   1,
			MinUnitPixel: minUnitPixel,
			MaxUnitPixel: maxUnitPixel,
		},
		status:         StatusNone,
		scroller:       NewScroller(),
		zoomLevelHook:  IdentityZoomLevelHook,
		redraw:         func() {},
		cursorFraction: ui.DefaultCursorFraction,
	}
	c.scale.UnitPixel = c.clampUnitPixel(maxUnitPixel * c.scale.ScaleRatio)
	c.scale.TickSpacePixel = float64(domain.Unit) * c.scale.UnitPixel

	return c, nil
}

// SetZoomLevelHook installs the hook invoked on scale steps; nil restores the
// identity hook.
func (c *Controller) SetZoomLevelHook(hook ZoomLevelHook) {
	if hook == nil {
		hook = IdentityZoomLevelHook
	}
	c.zoomLevelHook = hook
}

// SetRedrawRequester installs the function called whenever state changed.
func (c *Controller) SetRedrawRequester(redraw ui.RedrawRequester) {
	if redraw == nil {
		redraw = func() {}
	}
	c.redraw = redraw
}

// SetHitTester installs the hit tester taps are resolved with.
func (c *Controller) SetHitTester(h HitTester) { c.hitTester = h }

// SetSelectionListener installs the listener notified of tapped schedules.
func (c *Controller) SetSelectionListener(l ui.SelectionListener) { c.selectionListener = l }

// SetCursorFraction sets the cursor line position as a fraction of the
// viewport, used by Mapper.
func (c *Controller) SetCursorFraction(f float64) { c.cursorFraction = f }

// Status returns the current gesture status.
func (c *Controller) Status() Status { return c.status }

// Domain returns the current time domain (whose unit the zoom hook may have
// swapped).
func (c *Controller) Domain() model.TimeDomain { return c.domain }

// Snapshot returns a copy of the current scale state.
func (c *Controller) Snapshot() ScaleState { return c.scale }

// Mapper returns the mapper for a viewport of the given main-axis size.
func (c *Controller) Mapper(viewportSize float64) ui.Mapper {
	return ui.NewMapper(viewportSize, c.cursorFraction, c.scale.CursorTime, c.scale.UnitPixel)
}

// IsAnimating reports whether AnimationTick should be called for the next
// frame.
func (c *Controller) IsAnimating() bool {
	return c.status == StatusFlinging
}

func (c *Controller) setStatus(s Status) {
	if c.status != s {
		log.Trace().Stringer("from", c.status).Stringer("to", s).Msg("gesture status change")
		c.status = s
	}
}

// PointerDown starts a gesture. A running fling is stopped where it is.
func (c *Controller) PointerDown() {
	if !c.stopFling() {
		c.scrollHappened = false
	}
	c.setStatus(StatusDown)
}

// PointerUp ends a gesture. A running fling or scale gesture is unaffected.
func (c *Controller) PointerUp() {
	if c.status == StatusFlinging || c.status == StatusZooming || c.scaling {
		return
	}
	c.setStatus(StatusNone)
}

// Scroll moves the cursor time by a drag of delta pixels along the main axis,
// made with the given number of pointers.
//
// Multi-pointer drags and drags during a scale gesture are ignored (false).
// The first drag sample after a pointer-down is swallowed (true). Otherwise
// the cursor moves and is clamped to the domain; false is returned if the
// clamp applied, i.E. a domain boundary was reached.
func (c *Controller) Scroll(delta float64, pointers int) bool {
	if pointers > 1 || c.scaling || math.IsNaN(delta) {
		return false
	}
	if !c.scrollHappened {
		c.scrollHappened = true
		return true
	}

	c.setStatus(StatusScrolling)

	span := float64(c.domain.Span())
	dt := math.Max(-span, math.Min(span, delta/c.scale.UnitPixel))
	c.scale.CursorTime += int64(dt)
	ok := c.clampCursor()
	c.redraw()
	return ok
}

// ScrollTo moves the cursor to the given time, clamped to the domain.
// A running fling is stopped.
func (c *Controller) ScrollTo(t int64) bool {
	if c.stopFling() {
		c.setStatus(StatusDown)
	}
	c.scale.CursorTime = t
	ok := c.clampCursor()
	c.redraw()
	return ok
}

// ScrollToStart moves the cursor to the domain start.
func (c *Controller) ScrollToStart() { c.ScrollTo(c.domain.Start) }

// ScrollToEnd moves the cursor to the domain end.
func (c *Controller) ScrollToEnd() { c.ScrollTo(c.domain.End) }

// ScaleBegin starts a scale gesture. A running fling is stopped.
func (c *Controller) ScaleBegin() {
	c.stopFling()
	c.scaling = true
	c.setStatus(StatusZooming)
}

// ScaleBy applies a pinch factor to the zoom.
//
// If the result would leave the zoom bounds it is clamped to the bound and
// the factor counts as 1 towards the accumulated scale ratio. The zoom level
// hook is then consulted and the tick spacing recomputed.
// Returns false if the zoom was clamped. Factors that are not finite and
// positive are ignored (false).
func (c *Controller) ScaleBy(factor float64) bool {
	if math.IsNaN(factor) || math.IsInf(factor, 0) || factor <= 0 {
		log.Warn().Float64("factor", factor).Msg("ignoring unusable scale factor")
		return false
	}
	c.stopFling()
	c.setStatus(StatusZooming)

	applied := factor
	unitPixel := c.scale.UnitPixel * factor
	clamped := c.clampUnitPixel(unitPixel)
	if clamped != unitPixel {
		applied = 1
	}
	c.scale.UnitPixel = clamped

	if hooked := c.zoomLevelHook(c.domain, c.scale.UnitPixel); hooked.Unit != c.domain.Unit {
		if hooked.Unit > 0 && hooked.Start == c.domain.Start && hooked.End == c.domain.End {
			log.Debug().Int64("from", c.domain.Unit).Int64("to", hooked.Unit).Msg("zoom level hook swapped unit")
			c.domain = hooked
		} else {
			log.Warn().Stringer("domain", hooked).Msg("zoom level hook returned unusable domain, ignoring")
		}
	}

	c.scale.ScaleRatio *= applied
	c.scale.TickSpacePixel = float64(c.domain.Unit) * c.scale.UnitPixel

	log.Trace().Stringer("scale", c.scale).Msg("scaled")

	c.redraw()
	return applied == factor
}

// ScaleEnd ends a scale gesture.
func (c *Controller) ScaleEnd() {
	c.scaling = false
	if c.status == StatusZooming {
		c.setStatus(StatusDown)
	}
}

// Fling starts a fling with the given velocity (pixels per second along the
// main axis, positive for a drag towards the domain start).
func (c *Controller) Fling(velocity float64) {
	c.setStatus(StatusFlinging)

	startOffset := float64(c.scale.CursorTime-c.domain.Start) * c.scale.UnitPixel
	maxOffset := float64(c.domain.End-c.domain.Start) * c.scale.UnitPixel

	c.scroller.Fling(startOffset, -velocity, 0, maxOffset)
	log.Debug().Float64("velocity", velocity).Float64("offset", startOffset).Float64("max", maxOffset).Msg("fling started")

	c.redraw()
}

// AnimationTick advances a running fling by one frame. It returns whether
// further frames are needed.
func (c *Controller) AnimationTick() bool {
	if c.scroller.ComputeOffset() {
		c.scale.CursorTime = c.domain.Start + int64(math.Round(c.scroller.Offset()/c.scale.UnitPixel))
		c.clampCursor()
		c.redraw()
		if !c.scroller.IsFinished() {
			return true
		}
	}
	if c.status == StatusFlinging {
		log.Debug().Int("frames", c.scroller.Frames()).Int64("cursor", c.scale.CursorTime).Msg("fling done")
		c.setStatus(StatusDown)
	}
	return false
}

// Tap resolves a tap at the given point against the hit tester and notifies
// the selection listener of a hit. It returns the hit schedule or nil.
// Taps during a scale gesture are ignored. The scale state is never touched.
func (c *Controller) Tap(x, y float64) *model.Schedule {
	if c.scaling || c.hitTester == nil {
		return nil
	}
	s := c.hitTester.HitTest(x, y)
	if s != nil && c.selectionListener != nil {
		c.selectionListener(s)
	}
	return s
}

// stopFling finishes a running fling in place. The scroller's offset is in
// pixels of the current zoom, so it must not outlive a zoom change.
func (c *Controller) stopFling() bool {
	if c.status != StatusFlinging {
		return false
	}
	c.scroller.ForceFinished()
	log.Debug().Int64("cursor", c.scale.CursorTime).Msg("fling stopped")
	return true
}

func (c *Controller) clampCursor() bool {
	t, clamped := c.domain.Clamp(c.scale.CursorTime)
	if clamped {
		log.Trace().Int64("cursor", c.scale.CursorTime).Int64("clamped", t).Msg("cursor reached domain boundary")
	}
	c.scale.CursorTime = t
	return !clamped
}

func (c *Controller) clampUnitPixel(unitPixel float64) float64 {
	switch {
	case math.IsNaN(unitPixel):
		return c.scale.UnitPixel
	case unitPixel > c.scale.MaxUnitPixel:
		return c.scale.MaxUnitPixel
	case unitPixel < c.scale.MinUnitPixel:
		return c.scale.MinUnitPixel
	default:
		return unitPixel
	}
}
