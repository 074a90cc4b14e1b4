package model

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Granularity is a tick unit the ruler knows how to label sensibly.
type Granularity time.Duration

// The available granularities, finest first.
const (
	GranularityHalfMinute Granularity = Granularity(30 * time.Second)
	GranularityMinute     Granularity = Granularity(time.Minute)
	GranularityFiveMin    Granularity = Granularity(5 * time.Minute)
	GranularityTenMin     Granularity = Granularity(10 * time.Minute)
	GranularityHalfHour   Granularity = Granularity(30 * time.Minute)
	GranularityHour       Granularity = Granularity(time.Hour)
)

// Granularities lists all granularities, finest first.
var Granularities = []Granularity{
	GranularityHalfMinute,
	GranularityMinute,
	GranularityFiveMin,
	GranularityTenMin,
	GranularityHalfHour,
	GranularityHour,
}

// Millis returns the granularity in milliseconds, i.E. as a unit time value.
func (g Granularity) Millis() int64 { return time.Duration(g).Milliseconds() }

func (g Granularity) String() string { return time.Duration(g).String() }

// GranularityFor returns the finest granularity whose ticks would be at least
// minTickSpace pixels apart at the given pixels-per-millisecond.
// If even the coarsest is too dense, the coarsest is returned.
func GranularityFor(unitPixel, minTickSpace float64) Granularity {
	for _, g := range Granularities {
		if float64(g.Millis())*unitPixel >= minTickSpace {
			return g
		}
	}
	return Granularities[len(Granularities)-1]
}

// AdaptiveUnit returns a zoom-level hook that swaps the domain's unit for the
// granularity appropriate at the new zoom (see GranularityFor).
func AdaptiveUnit(minTickSpace float64) func(TimeDomain, float64) TimeDomain {
	return func(d TimeDomain, unitPixel float64) TimeDomain {
		g := GranularityFor(unitPixel, minTickSpace)
		if g.Millis() != d.Unit {
			log.Debug().
				Stringer("granularity", g).
				Float64("unit-pixel", unitPixel).
				Msg("switching tick granularity")
		}
		return d.WithUnit(g.Millis())
	}
}
