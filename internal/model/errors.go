package model

import "errors"

var (
	// ErrInvalidDomain is returned when a time domain would start after it ends.
	ErrInvalidDomain = errors.New("invalid time domain")
	// ErrInvalidConfiguration is returned for parameters that can never yield a
	// usable ruler, e.g. a non-positive tick unit.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrInvalidSchedule is returned for a schedule that ends before it starts.
	ErrInvalidSchedule = errors.New("invalid schedule")
)
