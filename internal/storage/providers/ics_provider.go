package providers

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/model"
)

// ICSProvider provides the events of iCalendar files as schedules.
// Recurring events are expanded; all-day events are included with the full
// day as their span.
type ICSProvider struct {
	Paths []string

	fhMutex      sync.Mutex
	fileHandlers map[string]*icsFileHandler
}

// NewICSProvider constructs a provider over the given calendar files.
func NewICSProvider(paths ...string) *ICSProvider {
	return &ICSProvider{
		Paths:        paths,
		fileHandlers: make(map[string]*icsFileHandler),
	}
}

func (p *ICSProvider) getFileHandler(path string) *icsFileHandler {
	p.fhMutex.Lock()
	defer p.fhMutex.Unlock()

	fh, ok := p.fileHandlers[path]
	if !ok {
		fh = newICSFileHandler(path)
		p.fileHandlers[path] = fh
	}
	return fh
}

// GetSchedulesCoveringTimerange returns the occurrences of all calendar
// events overlapping the timerange.
// An unreadable file is an error; an unusable event is logged and skipped.
func (p *ICSProvider) GetSchedulesCoveringTimerange(start, end time.Time) ([]*model.Schedule, error) {
	result := make([]*model.Schedule, 0)
	for _, path := range p.Paths {
		events, err := p.getFileHandler(path).Events()
		if err != nil {
			return nil, fmt.Errorf("error loading calendar (%w)", err)
		}

		for i := range events {
			e := &events[i]
			occurrences, truncated, err := expandOccurrences(e.start, e.end, e.rrule, e.exdates, start, end)
			if err != nil {
				log.Warn().Err(err).Str("uid", e.uid).Msg("skipping calendar event")
				continue
			}
			if truncated {
				log.Warn().Str("uid", e.uid).Int("cap", maxOccurrences).Msg("truncated occurrences of calendar event")
			}
			for _, o := range occurrences {
				result = append(result, &model.Schedule{
					ID:       occurrenceID(e.uid, o.start),
					Start:    model.Millis(o.start),
					End:      model.Millis(o.end),
					Title:    e.summary,
					Text:     e.description,
					Category: e.category,
					Payload:  e.uid,
				})
			}
		}
	}
	return result, nil
}
