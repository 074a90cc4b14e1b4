package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp is a time of day with minute resolution.
// Hour may be 24 to denote the end of a day.
type Timestamp struct {
	Hour, Minute int
}

// NewTimestampFromGotime returns the time of day of the given time.
func NewTimestampFromGotime(t time.Time) Timestamp {
	return Timestamp{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseTimestamp parses a "HH:MM" string.
func ParseTimestamp(s string) (Timestamp, error) {
	components := strings.Split(s, ":")
	if len(components) != 2 {
		return Timestamp{}, fmt.Errorf("'%s' does not fit the HH:MM format", s)
	}
	h, err := strconv.Atoi(components[0])
	if err != nil {
		return Timestamp{}, fmt.Errorf("error converting hour of '%s' (%w)", s, err)
	}
	m, err := strconv.Atoi(components[1])
	if err != nil {
		return Timestamp{}, fmt.Errorf("error converting minute of '%s' (%w)", s, err)
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return Timestamp{}, fmt.Errorf("'%s' is not a time of day", s)
	}
	return Timestamp{Hour: h, Minute: m}, nil
}

// ToString formats the timestamp as HH:MM.
func (a Timestamp) ToString() string {
	return fmt.Sprintf("%02d:%02d", a.Hour, a.Minute)
}

// On returns the timestamp placed on the given date.
func (a Timestamp) On(d Date, loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, a.Hour, a.Minute, 0, 0, loc)
}

// IsAfter reports whether a is strictly later than b.
func (a Timestamp) IsAfter(b Timestamp) bool {
	if a.Hour != b.Hour {
		return a.Hour > b.Hour
	}
	return a.Minute > b.Minute
}
