package model

import (
	"fmt"
	"time"
)

// TimeDomain is the valid range of a ruler together with its current tick
// granularity. All values are milliseconds (since the Unix epoch for Start and
// End).
//
// Start and End are fixed for the lifetime of a TimeDomain; to show another
// range (e.g., the next day) construct a new one. The Unit may be swapped via
// WithUnit, which returns a copy.
type TimeDomain struct {
	Start int64
	End   int64
	Unit  int64
}

// NewTimeDomain constructs a TimeDomain, failing on a degenerate range or a
// non-positive unit.
func NewTimeDomain(start, end, unit int64) (TimeDomain, error) {
	if start > end {
		return TimeDomain{}, fmt.Errorf("start %d is after end %d: %w", start, end, ErrInvalidDomain)
	}
	if unit <= 0 {
		return TimeDomain{}, fmt.Errorf("unit time value must be positive, got %d: %w", unit, ErrInvalidConfiguration)
	}
	return TimeDomain{Start: start, End: end, Unit: unit}, nil
}

// DayDomain returns the domain spanning the given date in the given location,
// from midnight to the following midnight.
func DayDomain(d Date, loc *time.Location, unit time.Duration) (TimeDomain, error) {
	start := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return NewTimeDomain(Millis(start), Millis(end), unit.Milliseconds())
}

// WithUnit returns a copy of the domain with the given tick unit.
// A non-positive unit leaves the domain unchanged.
func (d TimeDomain) WithUnit(unit int64) TimeDomain {
	if unit <= 0 {
		return d
	}
	d.Unit = unit
	return d
}

// Span is the length of the domain in milliseconds.
func (d TimeDomain) Span() int64 { return d.End - d.Start }

// Contains reports whether t lies within [Start, End].
func (d TimeDomain) Contains(t int64) bool { return t >= d.Start && t <= d.End }

// Clamp saturates t to [Start, End] and reports whether it had to.
func (d TimeDomain) Clamp(t int64) (int64, bool) {
	switch {
	case t < d.Start:
		return d.Start, true
	case t > d.End:
		return d.End, true
	default:
		return t, false
	}
}

// String implements fmt.Stringer.
func (d TimeDomain) String() string {
	return fmt.Sprintf("[%s, %s] per %s",
		FromMillis(d.Start).Format(time.RFC3339),
		FromMillis(d.End).Format(time.RFC3339),
		time.Duration(d.Unit)*time.Millisecond,
	)
}

// Millis converts a time to milliseconds since the Unix epoch.
func Millis(t time.Time) int64 { return t.UnixMilli() }

// FromMillis converts milliseconds since the Unix epoch to a local time.
func FromMillis(ms int64) time.Time { return time.UnixMilli(ms) }
