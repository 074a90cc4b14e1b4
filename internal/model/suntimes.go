package model

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// SunTimes represents the sunrise and sunset of a date.
type SunTimes struct {
	Rise, Set time.Time
}

// SunTimesProvider computes sun times for a fixed location.
type SunTimesProvider struct {
	Latitude  float64
	Longitude float64
}

// Get returns the sunrise and sunset for the date in the given location.
func (p *SunTimesProvider) Get(d Date, loc *time.Location) SunTimes {
	rise, set := sunrise.SunriseSunset(p.Latitude, p.Longitude, d.Year, time.Month(d.Month), d.Day)
	return SunTimes{Rise: rise.In(loc), Set: set.In(loc)}
}

// IsDaylight reports whether the millisecond time value lies between sunrise
// and sunset.
func (s SunTimes) IsDaylight(ms int64) bool {
	return ms >= Millis(s.Rise) && ms < Millis(s.Set)
}
