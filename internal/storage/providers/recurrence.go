package providers

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// maxOccurrences caps the expansion of a single recurring schedule.
const maxOccurrences = 5000

// occurrence is one concrete instance of a (possibly recurring) schedule.
type occurrence struct {
	start time.Time
	end   time.Time
}

// expandOccurrences returns the occurrences of the schedule spanning
// [start, end) that overlap [rangeStart, rangeEnd].
// Without a rule that is the schedule itself (if it overlaps). With a rule,
// start is the first occurrence and every occurrence keeps the original
// duration; exdates are excluded.
func expandOccurrences(
	start, end time.Time,
	rawRule string,
	exdates []time.Time,
	rangeStart, rangeEnd time.Time,
) ([]occurrence, bool, error) {
	if rawRule == "" {
		if end.Before(rangeStart) || rangeEnd.Before(start) {
			return nil, false, nil
		}
		return []occurrence{{start: start, end: end}}, false, nil
	}

	r, err := rrule.StrToRRule(rawRule)
	if err != nil {
		return nil, false, fmt.Errorf("could not parse recurrence rule '%s' (%w)", rawRule, err)
	}
	r.DTStart(start)

	set := rrule.Set{}
	set.RRule(r)
	for _, ex := range exdates {
		set.ExDate(ex.In(start.Location()))
	}

	dur := end.Sub(start)
	// occurrences starting before the range may still reach into it
	starts := set.Between(rangeStart.Add(-dur), rangeEnd, true)

	truncated := false
	if len(starts) > maxOccurrences {
		starts = starts[:maxOccurrences]
		truncated = true
	}

	result := make([]occurrence, 0, len(starts))
	for _, s := range starts {
		result = append(result, occurrence{start: s, end: s.Add(dur)})
	}
	return result, truncated, nil
}
