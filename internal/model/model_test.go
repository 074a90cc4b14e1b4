package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/ja-he/timeruler/internal/model"
)

func TestNewTimeDomain(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		d, err := model.NewTimeDomain(0, 86_400_000, 60_000)
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if d.Span() != 86_400_000 {
			t.Errorf("expected span of one day, got %d", d.Span())
		}
	})
	t.Run("empty range is fine", func(t *testing.T) {
		_, err := model.NewTimeDomain(5, 5, 1)
		if err != nil {
			t.Errorf("unexpected error for start == end: %s", err.Error())
		}
	})
	t.Run("start after end", func(t *testing.T) {
		_, err := model.NewTimeDomain(10, 5, 1)
		if !errors.Is(err, model.ErrInvalidDomain) {
			t.Errorf("expected ErrInvalidDomain, got %v", err)
		}
	})
	t.Run("non-positive unit", func(t *testing.T) {
		for _, unit := range []int64{0, -1} {
			_, err := model.NewTimeDomain(0, 5, unit)
			if !errors.Is(err, model.ErrInvalidConfiguration) {
				t.Errorf("expected ErrInvalidConfiguration for unit %d, got %v", unit, err)
			}
		}
	})
}

func TestTimeDomainClamp(t *testing.T) {
	d, _ := model.NewTimeDomain(100, 200, 10)
	cases := []struct {
		in      int64
		out     int64
		clamped bool
	}{
		{in: 50, out: 100, clamped: true},
		{in: 100, out: 100, clamped: false},
		{in: 150, out: 150, clamped: false},
		{in: 200, out: 200, clamped: false},
		{in: 201, out: 200, clamped: true},
	}
	for _, c := range cases {
		out, clamped := d.Clamp(c.in)
		if out != c.out || clamped != c.clamped {
			t.Errorf("Clamp(%d): expected (%d,%t), got (%d,%t)", c.in, c.out, c.clamped, out, clamped)
		}
	}
}

func TestWithUnit(t *testing.T) {
	d, _ := model.NewTimeDomain(0, 100, 10)
	if d.WithUnit(20).Unit != 20 {
		t.Error("unit not replaced")
	}
	if d.WithUnit(0).Unit != 10 {
		t.Error("non-positive unit was accepted")
	}
	if d.Unit != 10 {
		t.Error("original domain mutated")
	}
}

func TestDayDomain(t *testing.T) {
	d, err := model.DayDomain(model.Date{Year: 2022, Month: 11, Day: 13}, time.UTC, 10*time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	expectedStart := time.Date(2022, 11, 13, 0, 0, 0, 0, time.UTC).UnixMilli()
	if d.Start != expectedStart {
		t.Errorf("expected start %d, got %d", expectedStart, d.Start)
	}
	if d.Span() != 24*60*60*1000 {
		t.Errorf("expected a 24h span, got %d", d.Span())
	}
	if d.Unit != 600_000 {
		t.Errorf("expected 10min unit, got %d", d.Unit)
	}
}

func TestScheduleValidate(t *testing.T) {
	base := time.Date(2022, 11, 13, 0, 0, 0, 0, time.UTC)
	if _, err := model.NewSchedule(base, base.Add(time.Hour), "ok"); err != nil {
		t.Errorf("unexpected error: %s", err.Error())
	}
	_, err := model.NewSchedule(base.Add(time.Hour), base, "backwards")
	if !errors.Is(err, model.ErrInvalidSchedule) {
		t.Errorf("expected ErrInvalidSchedule, got %v", err)
	}

	s, _ := model.NewSchedule(base, base.Add(90*time.Minute), "a")
	if s.ID == "" {
		t.Error("schedule has no ID")
	}
	if s.Duration() != 90*time.Minute {
		t.Errorf("unexpected duration %s", s.Duration())
	}
}

func TestGranularityFor(t *testing.T) {
	minTickSpace := 80.0
	minUnitPixel := minTickSpace / float64(time.Hour.Milliseconds())
	maxUnitPixel := minUnitPixel * 60

	if g := model.GranularityFor(minUnitPixel, minTickSpace); g != model.GranularityHour {
		t.Errorf("expected hourly ticks when fully zoomed out, got %s", g)
	}
	if g := model.GranularityFor(maxUnitPixel, minTickSpace); g != model.GranularityMinute {
		t.Errorf("expected minute ticks when fully zoomed in, got %s", g)
	}
	if g := model.GranularityFor(minUnitPixel/2, minTickSpace); g != model.GranularityHour {
		t.Errorf("expected coarsest as fallback, got %s", g)
	}

	hook := model.AdaptiveUnit(minTickSpace)
	d, _ := model.NewTimeDomain(0, 86_400_000, model.GranularityHour.Millis())
	if hook(d, maxUnitPixel).Unit != model.GranularityMinute.Millis() {
		t.Error("adaptive hook did not switch to minute ticks")
	}
}

func TestParseTimestamp(t *testing.T) {
	{
		ts, err := model.ParseTimestamp("09:05")
		if err != nil || ts != (model.Timestamp{Hour: 9, Minute: 5}) {
			t.Errorf("unexpected result %v, %v", ts, err)
		}
	}
	{
		ts, err := model.ParseTimestamp("24:00")
		if err != nil || ts.Hour != 24 {
			t.Errorf("end of day not accepted: %v, %v", ts, err)
		}
	}
	for _, bad := range []string{"9", "25:00", "24:01", "12:60", "ab:cd"} {
		if _, err := model.ParseTimestamp(bad); err == nil {
			t.Errorf("'%s' was accepted", bad)
		}
	}
}

func TestDateFromString(t *testing.T) {
	d, err := model.FromString("2024-02-29")
	if err != nil {
		t.Fatalf("unexpected error: %s", err.Error())
	}
	if d.Next() != (model.Date{Year: 2024, Month: 3, Day: 1}) {
		t.Errorf("unexpected next date %s", d.Next())
	}
	if d.Prev() != (model.Date{Year: 2024, Month: 2, Day: 28}) {
		t.Errorf("unexpected previous date %s", d.Prev())
	}
	if _, err := model.FromString("2023-02-29"); err == nil {
		t.Error("accepted non-existent date")
	}
}

func TestSunTimesIsDaylight(t *testing.T) {
	base := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	s := model.SunTimes{Rise: base.Add(5 * time.Hour), Set: base.Add(21 * time.Hour)}
	if s.IsDaylight(model.Millis(base.Add(4 * time.Hour))) {
		t.Error("night reported as daylight")
	}
	if !s.IsDaylight(model.Millis(base.Add(12 * time.Hour))) {
		t.Error("noon reported as night")
	}
}
