package providers

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/rs/zerolog/log"
)

// icsEvent is a VEVENT as far as the ruler is concerned.
type icsEvent struct {
	uid         string
	summary     string
	description string
	category    string

	start  time.Time
	end    time.Time
	allDay bool

	rrule   string
	exdates []time.Time
}

type icsFileHandler struct {
	mutex sync.Mutex

	path    string
	modTime time.Time
	events  []icsEvent
}

func newICSFileHandler(path string) *icsFileHandler {
	return &icsFileHandler{path: path}
}

// Events returns the file's events, (re)reading the file if it changed since
// the last read.
func (h *icsFileHandler) Events() ([]icsEvent, error) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	info, err := os.Stat(h.path)
	if err != nil {
		return nil, fmt.Errorf("could not stat '%s' (%w)", h.path, err)
	}
	if h.events != nil && info.ModTime().Equal(h.modTime) {
		return h.events, nil
	}

	f, err := os.Open(h.path)
	if err != nil {
		return nil, fmt.Errorf("could not open '%s' (%w)", h.path, err)
	}
	defer f.Close()

	cal, err := ical.ParseCalendar(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse calendar '%s' (%w)", h.path, err)
	}

	events := make([]icsEvent, 0)
	for _, ve := range cal.Events() {
		e, err := parseVEvent(ve)
		if err != nil {
			log.Warn().Err(err).Str("file", h.path).Msg("skipping calendar event")
			continue
		}
		events = append(events, e)
	}
	log.Debug().Str("file", h.path).Int("events", len(events)).Msg("read calendar")

	h.events = events
	h.modTime = info.ModTime()
	return h.events, nil
}

func parseVEvent(ve *ical.VEvent) (icsEvent, error) {
	var e icsEvent

	uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
	if uid == nil || uid.Value == "" {
		return e, errors.New("missing UID")
	}
	e.uid = uid.Value

	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		e.summary = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyDescription); p != nil {
		e.description = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertyCategories); p != nil {
		e.category = strings.TrimSpace(strings.Split(p.Value, ",")[0])
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return e, fmt.Errorf("event '%s' has no start", e.uid)
	}
	e.allDay = !strings.Contains(dtStart.Value, "T")
	if vs, ok := dtStart.ICalParameters["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
		e.allDay = true
	}

	var err error
	if e.allDay {
		e.start, err = parseICSTime(dtStart.Value)
		if err != nil {
			return e, fmt.Errorf("event '%s' has invalid start (%w)", e.uid, err)
		}
		e.end = e.start.AddDate(0, 0, 1)
		if dtEnd := ve.GetProperty(ical.ComponentPropertyDtEnd); dtEnd != nil {
			if end, err := parseICSTime(dtEnd.Value); err == nil {
				e.end = end
			}
		}
	} else {
		e.start, err = ve.GetStartAt()
		if err != nil {
			return e, fmt.Errorf("event '%s' has invalid start (%w)", e.uid, err)
		}
		e.end, err = ve.GetEndAt()
		if err != nil {
			e.end = e.start
		}
	}
	if e.end.Before(e.start) {
		return e, fmt.Errorf("event '%s' ends before it starts", e.uid)
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		e.rrule = p.Value
	}
	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			if t, err := parseICSTime(part); err == nil {
				e.exdates = append(e.exdates, t)
			}
		}
	}

	return e, nil
}

// parseICSTime parses the basic DATE / DATE-TIME forms.
func parseICSTime(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	switch {
	case v == "":
		return time.Time{}, errors.New("empty time value")
	case strings.HasSuffix(v, "Z"):
		return time.Parse("20060102T150405Z", v)
	case strings.Contains(v, "T"):
		return time.ParseInLocation("20060102T150405", v, time.Local)
	default:
		return time.ParseInLocation("20060102", v, time.Local)
	}
}
