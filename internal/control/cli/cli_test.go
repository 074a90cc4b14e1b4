package cli

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/model"
)

func withConfig(t *testing.T, yamlData string) string {
	t.Helper()
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(yamlData), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TIMERULER_HOME", home)
	t.Setenv("LATITUDE", "")
	t.Setenv("LONGITUDE", "")
	return home
}

func TestLoadEnvironment(t *testing.T) {
	t.Run("config file augments defaults", func(t *testing.T) {
		home := withConfig(t, "ruler:\n  min-tick-space: 6\nkeys:\n  x: quit\n")
		cfg, envData, err := loadEnvironment(config.Dark)
		if err != nil {
			t.Fatal(err)
		}
		if envData.BaseDirPath != home {
			t.Errorf("expected base dir '%s', got '%s'", home, envData.BaseDirPath)
		}
		if cfg.Ruler.MinTickSpace != 6 {
			t.Errorf("expected min tick space 6, got %g", cfg.Ruler.MinTickSpace)
		}
		if cfg.Ruler.CursorPosition != 0.3 {
			t.Errorf("expected default cursor position, got %g", cfg.Ruler.CursorPosition)
		}
		if cfg.Keys["x"] != "quit" || cfg.Keys["j"] != "scroll-forward" {
			t.Errorf("expected keys merged with defaults, got %v", cfg.Keys)
		}
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Setenv("TIMERULER_HOME", filepath.Join(t.TempDir(), "nothing-here")+"/")
		cfg, _, err := loadEnvironment(config.Light)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Ruler.Unit != "1h" {
			t.Errorf("expected defaults, got unit '%s'", cfg.Ruler.Unit)
		}
	})

	t.Run("invalid config", func(t *testing.T) {
		withConfig(t, "ruler:\n  cursor-position: 2\n")
		if _, _, err := loadEnvironment(config.Dark); err == nil {
			t.Error("expected error for cursor position out of range")
		}
	})
}

func TestParseDay(t *testing.T) {
	now := time.Date(2021, 3, 4, 12, 0, 0, 0, time.UTC)
	d, err := parseDay("", now)
	if err != nil || d != (model.Date{Year: 2021, Month: 3, Day: 4}) {
		t.Errorf("expected today, got %v (%v)", d, err)
	}
	d, err = parseDay("2020-02-29", now)
	if err != nil || d != (model.Date{Year: 2020, Month: 2, Day: 29}) {
		t.Errorf("expected given day, got %v (%v)", d, err)
	}
	if _, err := parseDay("yesterday", now); err == nil {
		t.Error("expected error for unparseable day")
	}
}

func TestTicksCommand(t *testing.T) {
	withConfig(t, `
ruler:
  min-tick-space: 4
  cursor-position: 0.25
  unit: 1h
  adaptive-unit: false
`)

	var out bytes.Buffer
	command := TicksCommand{
		ViewportOpts: ViewportOpts{Day: "2021-03-04", Cursor: "03:00", Extent: 40, Zoom: 1.0 / 60},
		out:          &out,
		loc:          time.UTC,
	}
	if err := command.Execute(nil); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 11 {
		t.Fatalf("expected 11 ticks, got %d:\n%s", len(lines), out.String())
	}
	if lines[0] != "03:00:00    10.00  key" {
		t.Errorf("expected cursor tick first, got '%s'", lines[0])
	}
	// backward from the cursor, then forward
	for i, prefix := range map[int]string{1: "02:00:00", 2: "01:00:00", 3: "04:00:00", 10: "11:00:00"} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("expected line %d to start with %s, got '%s'", i, prefix, lines[i])
		}
	}

	t.Run("invalid extent", func(t *testing.T) {
		command := TicksCommand{ViewportOpts: ViewportOpts{Day: "2021-03-04", Extent: 0, Zoom: 1}, out: &out, loc: time.UTC}
		if err := command.Execute(nil); err == nil {
			t.Error("expected error for zero extent")
		}
	})

	t.Run("invalid cursor", func(t *testing.T) {
		command := TicksCommand{ViewportOpts: ViewportOpts{Day: "2021-03-04", Cursor: "25:00", Extent: 40, Zoom: 1}, out: &out, loc: time.UTC}
		if err := command.Execute(nil); err == nil {
			t.Error("expected error for invalid cursor")
		}
	})
}

func TestLayoutCommand(t *testing.T) {
	withConfig(t, `
ruler:
  min-tick-space: 4
  cursor-position: 0.25
  baseline-position: 0.1
schedules:
  - title: Standup
    category: meeting
    start: "09:00"
    end: "09:30"
  - title: Dinner
    start: "19:00"
    end: "20:00"
`)

	var out bytes.Buffer
	command := LayoutCommand{
		ViewportOpts: ViewportOpts{Day: "2021-03-04", Cursor: "09:00", Extent: 40, Zoom: 1},
		Cross:        80,
		out:          &out,
		loc:          time.UTC,
	}
	if err := command.Execute(nil); err != nil {
		t.Fatal(err)
	}

	var records []CardRecord
	if err := yaml.Unmarshal(out.Bytes(), &records); err != nil {
		t.Fatalf("output not parseable (%s):\n%s", err.Error(), out.String())
	}
	if len(records) != 1 {
		t.Fatalf("expected only the standup card, got %v", records)
	}
	r := records[0]
	if r.Title != "Standup" || r.Category != "meeting" || r.Start != "09:00" || r.End != "09:30" {
		t.Errorf("unexpected record %+v", r)
	}
	if r.Rect.Left != 10 || r.Rect.Right != 40 {
		t.Errorf("expected cards from baseline 8 plus margin 2 with width 30, got %+v", r.Rect)
	}
	if math.Abs(r.Rect.Top-10) > 1e-6 || math.Abs(r.Rect.Bottom-130) > 1e-6 {
		t.Errorf("expected card from cursor pixel 10 over 30 minutes at 4 cells each, got %+v", r.Rect)
	}
}

func TestShowVersion(t *testing.T) {
	var out bytes.Buffer
	if err := showVersion(&out); err != nil {
		t.Fatal(err)
	}
	if out.String() != "development (unknown)\n" {
		t.Errorf("unexpected version output '%s'", out.String())
	}
}
