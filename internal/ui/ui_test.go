package ui_test

import (
	"math"
	"testing"

	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
)

func TestMapperRoundTrip(t *testing.T) {
	domain, _ := model.NewTimeDomain(0, 86_400_000, 60_000)
	for _, unitPixel := range []float64{80.0 / 3_600_000, 80.0 / 60_000, 0.0137} {
		m := ui.NewMapper(1000, ui.DefaultCursorFraction, 43_200_000, unitPixel)
		for tv := domain.Start; tv <= domain.End; tv += 997_331 {
			got := m.PixelToTime(m.TimeToPixel(tv))
			if got != tv {
				t.Errorf("round trip at unitPixel %g: expected %d, got %d", unitPixel, tv, got)
			}
		}
	}
}

func TestMapperCursor(t *testing.T) {
	m := ui.NewMapper(1000, 0.3, 5_000, 0.01)
	if m.CursorPixel != 300 {
		t.Errorf("expected cursor at pixel 300, got %f", m.CursorPixel)
	}
	if m.TimeToPixel(5_000) != 300 {
		t.Errorf("cursor time not at cursor pixel: %f", m.TimeToPixel(5_000))
	}
	if got := m.TimeToPixel(6_000); math.Abs(got-310) > 1e-9 {
		t.Errorf("expected 310, got %f", got)
	}
	if got := m.PixelToTime(200); got != -5_000 {
		t.Errorf("expected -5000, got %d", got)
	}
}

func TestMapperDomainRegions(t *testing.T) {
	domain, _ := model.NewTimeDomain(0, 1_000, 100)
	m := ui.NewMapper(1000, 0.3, 0, 0.1)

	if lead := m.DomainLeadPixel(domain); lead != 300 {
		t.Errorf("expected 300px before the domain start, got %f", lead)
	}
	trail, ok := m.DomainTrailPixel(domain, 1000)
	if !ok || trail != 400 {
		t.Errorf("expected trailing region from 400, got %f (%t)", trail, ok)
	}

	m.CursorTime = 1_000
	m.UnitPixel = 10
	if lead := m.DomainLeadPixel(domain); lead != 0 {
		t.Errorf("expected no lead region, got %f", lead)
	}
}

func TestRectStrictlyContains(t *testing.T) {
	r := ui.Rect{Left: 0, Top: 0, Right: 10, Bottom: 10}
	if !r.StrictlyContains(5, 5) {
		t.Error("center not contained")
	}
	for _, p := range [][2]float64{{0, 5}, {10, 5}, {5, 0}, {5, 10}, {11, 5}} {
		if r.StrictlyContains(p[0], p[1]) {
			t.Errorf("point %v on/outside edge reported as contained", p)
		}
	}
}

type recordingRenderer struct {
	boxes [][4]int
}

func (r *recordingRenderer) DrawBox(x, y, w, h int, _ styling.DrawStyling) {
	r.boxes = append(r.boxes, [4]int{x, y, w, h})
}
func (r *recordingRenderer) DrawText(x, y, w, h int, _ styling.DrawStyling, _ string) {
	r.boxes = append(r.boxes, [4]int{x, y, w, h})
}

func TestConstrainedRenderer(t *testing.T) {
	rec := &recordingRenderer{}
	cr := ui.NewConstrainedRenderer(rec, func() (int, int, int, int) { return 10, 10, 20, 20 })

	cr.DrawBox(0, 0, 15, 15, nil)
	cr.DrawBox(25, 25, 10, 10, nil)
	cr.DrawBox(40, 40, 5, 5, nil)
	cr.DrawText(12, 12, 2, 2, nil, "x")

	expected := [][4]int{{10, 10, 5, 5}, {25, 25, 5, 5}, {12, 12, 2, 2}}
	if len(rec.boxes) != len(expected) {
		t.Fatalf("expected %d draw calls, got %d (%v)", len(expected), len(rec.boxes), rec.boxes)
	}
	for i := range expected {
		if rec.boxes[i] != expected[i] {
			t.Errorf("call %d: expected %v, got %v", i, expected[i], rec.boxes[i])
		}
	}
}

func TestParseOrientation(t *testing.T) {
	if o, err := ui.ParseOrientation("horizontal"); err != nil || o != ui.Horizontal {
		t.Errorf("unexpected %v, %v", o, err)
	}
	if _, err := ui.ParseOrientation("diagonal"); err == nil {
		t.Error("accepted unknown orientation")
	}
}
