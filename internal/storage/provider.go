// Package storage defines the sources the ruler's schedules come from.
package storage

import (
	"fmt"
	"sort"
	"time"

	"github.com/ja-he/timeruler/internal/model"
)

// ScheduleProvider is an abstracted source of schedules, which can be
// implemented over various backends (the configuration, calendar files, ...).
type ScheduleProvider interface {
	// GetSchedulesCoveringTimerange returns all schedules overlapping the given
	// timerange, with recurrences expanded to their individual occurrences.
	GetSchedulesCoveringTimerange(start, end time.Time) ([]*model.Schedule, error)
}

// MultiProvider combines several providers.
type MultiProvider []ScheduleProvider

// GetSchedulesCoveringTimerange collects the schedules of all providers,
// ordered by start (then end) time.
// Fails on the first provider error.
func (m MultiProvider) GetSchedulesCoveringTimerange(start, end time.Time) ([]*model.Schedule, error) {
	result := make([]*model.Schedule, 0)
	for i, p := range m {
		schedules, err := p.GetSchedulesCoveringTimerange(start, end)
		if err != nil {
			return nil, fmt.Errorf("provider %d: %w", i, err)
		}
		result = append(result, schedules...)
	}
	SortSchedules(result)
	return result, nil
}

// SortSchedules sorts schedules by start time, then end time, stably.
func SortSchedules(schedules []*model.Schedule) {
	sort.SliceStable(schedules, func(i, j int) bool {
		if schedules[i].Start != schedules[j].Start {
			return schedules[i].Start < schedules[j].Start
		}
		return schedules[i].End < schedules[j].End
	})
}

// SchedulesForDomain returns the schedules the provider has for the domain.
func SchedulesForDomain(p ScheduleProvider, d model.TimeDomain) ([]*model.Schedule, error) {
	return p.GetSchedulesCoveringTimerange(model.FromMillis(d.Start), model.FromMillis(d.End))
}
