package providers

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/model"
)

// scheduleNamespace namespaces the IDs derived for schedules without one of
// their own.
var scheduleNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/ja-he/timeruler/schedule"))

// dailyRule is the recurrence of configured schedules without a date.
const dailyRule = "FREQ=DAILY"

type configEntry struct {
	source config.Schedule

	date  *model.Date
	start model.Timestamp
	end   model.Timestamp
	rule  string
}

// ConfigProvider provides the schedules defined in the configuration.
//
// A schedule with a date occurs on that date (and, given a recurrence rule,
// recurs from there). A schedule without a date recurs by its rule from the
// start of whatever range is queried, or daily if it has no rule either.
type ConfigProvider struct {
	location *time.Location
	entries  []configEntry
}

// NewConfigProvider constructs a provider over the given configured
// schedules, placed in the given location (time.Local if nil).
// Schedules that cannot be interpreted are logged and left out.
func NewConfigProvider(schedules []config.Schedule, location *time.Location) *ConfigProvider {
	if location == nil {
		location = time.Local
	}
	p := &ConfigProvider{location: location}
	for _, s := range schedules {
		entry, err := newConfigEntry(s)
		if err != nil {
			log.Warn().Err(err).Str("title", s.Title).Msg("skipping configured schedule")
			continue
		}
		p.entries = append(p.entries, entry)
	}
	return p
}

func newConfigEntry(s config.Schedule) (configEntry, error) {
	entry := configEntry{source: s, rule: s.RRule}

	var err error
	entry.start, err = model.ParseTimestamp(s.Start)
	if err != nil {
		return entry, fmt.Errorf("invalid start (%w)", err)
	}
	entry.end, err = model.ParseTimestamp(s.End)
	if err != nil {
		return entry, fmt.Errorf("invalid end (%w)", err)
	}
	if entry.start.IsAfter(entry.end) {
		return entry, fmt.Errorf("%s-%s: %w", s.Start, s.End, model.ErrInvalidSchedule)
	}

	if s.Date != "" {
		d, err := model.FromString(s.Date)
		if err != nil {
			return entry, fmt.Errorf("invalid date (%w)", err)
		}
		entry.date = &d
	} else if entry.rule == "" {
		entry.rule = dailyRule
	}

	return entry, nil
}

// Len returns the number of usable configured schedules.
func (p *ConfigProvider) Len() int { return len(p.entries) }

// GetSchedulesCoveringTimerange returns the occurrences of all configured
// schedules overlapping the timerange.
func (p *ConfigProvider) GetSchedulesCoveringTimerange(start, end time.Time) ([]*model.Schedule, error) {
	result := make([]*model.Schedule, 0)
	for i := range p.entries {
		e := &p.entries[i]

		// undated entries recur from the day before, which may reach into the
		// range
		anchor := model.DateFromGotime(start.In(p.location)).Prev()
		if e.date != nil {
			anchor = *e.date
		}
		occurrences, truncated, err := expandOccurrences(
			e.start.On(anchor, p.location),
			e.end.On(anchor, p.location),
			e.rule, nil,
			start, end,
		)
		if err != nil {
			log.Warn().Err(err).Str("title", e.source.Title).Msg("skipping configured schedule")
			continue
		}
		if truncated {
			log.Warn().Str("title", e.source.Title).Int("cap", maxOccurrences).Msg("truncated occurrences of configured schedule")
		}

		for _, o := range occurrences {
			result = append(result, &model.Schedule{
				ID:       occurrenceID(e.source.Title, o.start),
				Start:    model.Millis(o.start),
				End:      model.Millis(o.end),
				Title:    e.source.Title,
				Text:     e.source.Text,
				Category: e.source.Category,
				Payload:  e.source,
			})
		}
	}
	return result, nil
}

// occurrenceID derives a stable ID for an occurrence.
func occurrenceID(key string, start time.Time) string {
	return uuid.NewSHA1(scheduleNamespace, []byte(key+"@"+start.UTC().Format(time.RFC3339))).String()
}
