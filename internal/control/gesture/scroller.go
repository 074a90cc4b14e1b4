package gesture

import (
	"math"
	"time"
)

// FrameStep is the simulated time between two scroller frames.
const FrameStep = time.Second / 60

const (
	// DefaultFriction is the default exponential velocity decay rate (per
	// second).
	DefaultFriction = 4.0
	// DefaultMinVelocity is the default velocity (pixels per second) below
	// which a fling halts.
	DefaultMinVelocity = 20.0
)

// Scroller simulates a fling along one axis.
//
// Velocity decays exponentially (by a constant factor per frame). The
// simulation halts once the speed drops below MinVelocity or the offset
// reaches one of its bounds; the offset never leaves its bounds.
type Scroller struct {
	Friction    float64
	MinVelocity float64

	offset   float64
	velocity float64
	lo, hi   float64
	frames   int
	finished bool
}

// NewScroller returns a finished scroller with the default friction model.
func NewScroller() *Scroller {
	return &Scroller{
		Friction:    DefaultFriction,
		MinVelocity: DefaultMinVelocity,
		finished:    true,
	}
}

// Fling starts a simulation at the given offset with the given velocity
// (pixels per second), bounded by [lo, hi].
func (s *Scroller) Fling(start, velocity, lo, hi float64) {
	if hi < lo {
		hi = lo
	}
	s.offset = math.Min(math.Max(start, lo), hi)
	s.velocity = velocity
	s.lo, s.hi = lo, hi
	s.frames = 0
	s.finished = math.Abs(velocity) < s.MinVelocity || s.Friction <= 0
}

// ComputeOffset advances the simulation by one frame.
// It returns false if the simulation had already finished, true otherwise
// (including on the frame on which it finishes).
func (s *Scroller) ComputeOffset() bool {
	if s.finished {
		return false
	}

	dt := FrameStep.Seconds()
	s.velocity *= math.Exp(-s.Friction * dt)
	s.offset += s.velocity * dt
	s.frames++

	switch {
	case s.offset <= s.lo:
		s.offset = s.lo
		s.finished = true
	case s.offset >= s.hi:
		s.offset = s.hi
		s.finished = true
	case math.Abs(s.velocity) < s.MinVelocity:
		s.finished = true
	}
	if s.finished {
		s.velocity = 0
	}
	return true
}

// ForceFinished stops the simulation at its current offset.
func (s *Scroller) ForceFinished() {
	s.finished = true
	s.velocity = 0
}

// IsFinished reports whether the simulation has halted.
func (s *Scroller) IsFinished() bool { return s.finished }

// Offset returns the current offset.
func (s *Scroller) Offset() float64 { return s.offset }

// Velocity returns the current velocity.
func (s *Scroller) Velocity() float64 { return s.velocity }

// Frames returns the number of frames computed since the last Fling.
func (s *Scroller) Frames() int { return s.frames }
