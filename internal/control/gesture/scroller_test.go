package gesture_test

import (
	"math"
	"testing"

	"github.com/ja-he/timeruler/internal/control/gesture"
)

func TestScroller(t *testing.T) {
	t.Run("monotonic deceleration", func(t *testing.T) {
		s := gesture.NewScroller()
		s.Fling(500, 4000, 0, 100_000)

		prevSpeed := math.Inf(1)
		prevOffset := s.Offset()
		for s.ComputeOffset() {
			if s.Frames() > 10_000 {
				t.Fatal("did not halt")
			}
			if s.IsFinished() {
				break
			}
			speed := math.Abs(s.Velocity())
			if speed >= prevSpeed {
				t.Fatalf("speed %g not below %g at frame %d", speed, prevSpeed, s.Frames())
			}
			if s.Offset() <= prevOffset {
				t.Fatalf("offset did not advance at frame %d", s.Frames())
			}
			prevSpeed, prevOffset = speed, s.Offset()
		}
		if !s.IsFinished() || s.Velocity() != 0 {
			t.Error("expected finished scroller at rest")
		}
		if s.Offset() < 0 || s.Offset() > 100_000 {
			t.Errorf("offset %g out of bounds", s.Offset())
		}
		if s.ComputeOffset() {
			t.Error("finished scroller kept computing")
		}
	})

	t.Run("stops at bounds", func(t *testing.T) {
		s := gesture.NewScroller()
		s.Fling(10, -1e5, 0, 100)
		for s.ComputeOffset() {
			if s.Frames() > 10_000 {
				t.Fatal("did not halt")
			}
		}
		if s.Offset() != 0 {
			t.Errorf("expected offset 0, got %g", s.Offset())
		}
		if s.Frames() != 1 {
			t.Errorf("expected halt on first frame, got %d", s.Frames())
		}
	})

	t.Run("start is clamped", func(t *testing.T) {
		s := gesture.NewScroller()
		s.Fling(500, 0, 0, 100)
		if s.Offset() != 100 || !s.IsFinished() {
			t.Errorf("expected clamped, finished scroller, got offset %g", s.Offset())
		}
	})

	t.Run("force finish", func(t *testing.T) {
		s := gesture.NewScroller()
		s.Fling(0, 1000, 0, 1000)
		s.ComputeOffset()
		at := s.Offset()
		s.ForceFinished()
		if s.ComputeOffset() || s.Offset() != at {
			t.Error("force-finished scroller moved")
		}
	})
}

func TestStatusString(t *testing.T) {
	for s, expected := range map[gesture.Status]string{
		gesture.StatusNone:      "none",
		gesture.StatusDown:      "down",
		gesture.StatusScrolling: "scrolling",
		gesture.StatusFlinging:  "flinging",
		gesture.StatusZooming:   "zooming",
		gesture.Status(99):      "unknown",
	} {
		if s.String() != expected {
			t.Errorf("expected %q, got %q", expected, s.String())
		}
	}
}
