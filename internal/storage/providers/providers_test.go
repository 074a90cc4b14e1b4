package providers_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/storage"
	"github.com/ja-he/timeruler/internal/storage/providers"
)

func at(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestConfigProvider(t *testing.T) {
	dayStart, dayEnd := at("2024-03-05T00:00:00Z"), at("2024-03-05T23:59:59Z")

	t.Run("dated schedule", func(t *testing.T) {
		p := providers.NewConfigProvider([]config.Schedule{
			{Title: "review", Date: "2024-03-05", Start: "09:00", End: "10:30", Category: "meeting"},
			{Title: "elsewhen", Date: "2024-03-07", Start: "09:00", End: "10:30"},
		}, time.UTC)
		schedules, err := p.GetSchedulesCoveringTimerange(dayStart, dayEnd)
		if err != nil {
			t.Fatal(err)
		}
		if len(schedules) != 1 {
			t.Fatalf("expected one schedule, got %d", len(schedules))
		}
		s := schedules[0]
		if s.Title != "review" || s.Category != "meeting" {
			t.Errorf("unexpected schedule %s", s)
		}
		if s.Start != model.Millis(at("2024-03-05T09:00:00Z")) || s.End != model.Millis(at("2024-03-05T10:30:00Z")) {
			t.Errorf("unexpected times %d-%d", s.Start, s.End)
		}
		if _, ok := s.Payload.(config.Schedule); !ok {
			t.Errorf("unexpected payload %T", s.Payload)
		}
	})

	t.Run("undated schedule occurs every day", func(t *testing.T) {
		p := providers.NewConfigProvider([]config.Schedule{
			{Title: "lunch", Start: "12:00", End: "13:00"},
		}, time.UTC)
		schedules, err := p.GetSchedulesCoveringTimerange(dayStart, dayEnd)
		if err != nil {
			t.Fatal(err)
		}
		if len(schedules) != 1 || schedules[0].Start != model.Millis(at("2024-03-05T12:00:00Z")) {
			t.Fatalf("expected lunch on the queried day, got %v", schedules)
		}

		again, _ := p.GetSchedulesCoveringTimerange(dayStart, dayEnd)
		if again[0].ID != schedules[0].ID {
			t.Error("occurrence IDs are not stable")
		}
		next, _ := p.GetSchedulesCoveringTimerange(dayStart.AddDate(0, 0, 1), dayEnd.AddDate(0, 0, 1))
		if len(next) != 1 || next[0].ID == schedules[0].ID {
			t.Error("occurrences on different days share an ID")
		}
	})

	t.Run("recurrence rule", func(t *testing.T) {
		p := providers.NewConfigProvider([]config.Schedule{
			{Title: "sync", Date: "2024-03-04", Start: "09:00", End: "09:30", RRule: "FREQ=WEEKLY;BYDAY=MO,WE"},
		}, time.UTC)
		schedules, err := p.GetSchedulesCoveringTimerange(at("2024-03-04T00:00:00Z"), at("2024-03-10T23:59:59Z"))
		if err != nil {
			t.Fatal(err)
		}
		if len(schedules) != 2 {
			t.Fatalf("expected two occurrences, got %d", len(schedules))
		}
		if schedules[1].Start != model.Millis(at("2024-03-06T09:00:00Z")) {
			t.Errorf("unexpected second occurrence %s", schedules[1])
		}
		if schedules[1].Duration() != 30*time.Minute {
			t.Errorf("occurrence did not keep duration: %s", schedules[1].Duration())
		}
	})

	t.Run("invalid schedules are skipped", func(t *testing.T) {
		p := providers.NewConfigProvider([]config.Schedule{
			{Title: "backwards", Date: "2024-03-05", Start: "10:00", End: "09:00"},
			{Title: "garbled", Date: "2024-03-05", Start: "nine", End: "10:00"},
			{Title: "bad date", Date: "5.3.2024", Start: "09:00", End: "10:00"},
			{Title: "fine", Date: "2024-03-05", Start: "09:00", End: "10:00"},
			{Title: "bad rule", Date: "2024-03-05", Start: "09:00", End: "10:00", RRule: "FREQ=SOMETIMES"},
		}, time.UTC)
		if p.Len() != 2 {
			t.Errorf("expected two usable schedules, got %d", p.Len())
		}
		schedules, err := p.GetSchedulesCoveringTimerange(dayStart, dayEnd)
		if err != nil {
			t.Fatal(err)
		}
		if len(schedules) != 1 || schedules[0].Title != "fine" {
			t.Errorf("expected only 'fine', got %v", schedules)
		}
	})
}

const calendar = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//timeruler//test//EN
BEGIN:VEVENT
UID:single@test
DTSTAMP:20240301T000000Z
DTSTART:20240305T090000Z
DTEND:20240305T100000Z
SUMMARY:Standup
DESCRIPTION:daily standup
CATEGORIES:meeting,work
END:VEVENT
BEGIN:VEVENT
UID:daily@test
DTSTAMP:20240301T000000Z
DTSTART:20240301T120000Z
DTEND:20240301T130000Z
RRULE:FREQ=DAILY
EXDATE:20240306T120000Z
SUMMARY:Lunch
END:VEVENT
BEGIN:VEVENT
DTSTAMP:20240301T000000Z
DTSTART:20240305T150000Z
DTEND:20240305T160000Z
SUMMARY:No UID
END:VEVENT
END:VCALENDAR
`

func writeCalendar(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "calendar.ics")
	if err := os.WriteFile(path, []byte(strings.ReplaceAll(calendar, "\n", "\r\n")), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestICSProvider(t *testing.T) {
	t.Run("events and recurrences", func(t *testing.T) {
		p := providers.NewICSProvider(writeCalendar(t))
		schedules, err := p.GetSchedulesCoveringTimerange(at("2024-03-05T00:00:00Z"), at("2024-03-07T00:00:00Z"))
		if err != nil {
			t.Fatal(err)
		}
		storage.SortSchedules(schedules)

		if len(schedules) != 2 {
			t.Fatalf("expected two schedules, got %d: %v", len(schedules), schedules)
		}
		standup, lunch := schedules[0], schedules[1]
		if standup.Title != "Standup" || standup.Text != "daily standup" || standup.Category != "meeting" {
			t.Errorf("unexpected standup %+v", standup)
		}
		if standup.Start != model.Millis(at("2024-03-05T09:00:00Z")) {
			t.Errorf("unexpected standup start %d", standup.Start)
		}
		if lunch.Title != "Lunch" || lunch.Start != model.Millis(at("2024-03-05T12:00:00Z")) {
			t.Errorf("unexpected lunch %+v", lunch)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		p := providers.NewICSProvider(filepath.Join(t.TempDir(), "nope.ics"))
		if _, err := p.GetSchedulesCoveringTimerange(at("2024-03-05T00:00:00Z"), at("2024-03-06T00:00:00Z")); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestMultiProvider(t *testing.T) {
	m := storage.MultiProvider{
		providers.NewConfigProvider([]config.Schedule{
			{Title: "late", Date: "2024-03-05", Start: "17:00", End: "18:00"},
		}, time.UTC),
		providers.NewICSProvider(writeCalendar(t)),
	}
	schedules, err := m.GetSchedulesCoveringTimerange(at("2024-03-05T00:00:00Z"), at("2024-03-05T23:59:59Z"))
	if err != nil {
		t.Fatal(err)
	}
	titles := make([]string, 0, len(schedules))
	for _, s := range schedules {
		titles = append(titles, s.Title)
	}
	if strings.Join(titles, ",") != "Standup,Lunch,late" {
		t.Errorf("unexpected merged order %v", titles)
	}
}
