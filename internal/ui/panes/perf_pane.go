package panes

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/util"
)

// PerfPane is an ephemeral pane used for showing render and input processing
// times during normal usage.
type PerfPane struct {
	ui.LeafPane

	renderTime          util.MetricsGetter
	eventProcessingTime util.MetricsGetter
}

// Draw draws this pane.
func (p *PerfPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dims()
	lastWidth := len(" render time: ....... xs ")
	avgWidth := w - lastWidth

	black := colorful.Hsl(0, 0, 0)
	defaultStyle := styling.StyleFromColors(black, colorful.Hsl(0, 0, 0.94))
	bad := colorful.Color{R: 1.0, G: 0.8, B: 0.8}
	hue, _, ltn := bad.Hsl()

	// the further the last value exceeds the average, the more saturated
	deviationStyle := func(m util.MetricsGetter) styling.DrawStyling {
		last, avg := m.GetLast(), m.Avg()
		sat := float64(0)
		if last > avg && avg > 0 {
			sat = math.Min(float64(last-avg)/float64(avg), 1.0)
		}
		return styling.StyleFromColors(black, colorful.Hsl(hue, sat, ltn))
	}

	p.Renderer.DrawBox(x, y, w, h, defaultStyle)

	for i, row := range []struct {
		name string
		m    util.MetricsGetter
	}{
		{"render", p.renderTime},
		{"input ", p.eventProcessingTime},
	} {
		p.Renderer.DrawText(x, y+i, lastWidth, 1, deviationStyle(row.m), fmt.Sprintf(" %s time: % 7d µs ", row.name, row.m.GetLast()))
		p.Renderer.DrawText(x+lastWidth, y+i, avgWidth, 1, defaultStyle, fmt.Sprintf(" %s avg ~ % 7d µs", row.name, row.m.Avg()))
	}
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *PerfPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.NoPanePositionInfo{}
}

// NewPerfPane constructs and returns a new PerfPane.
func NewPerfPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	condition func() bool,
	renderTime util.MetricsGetter,
	eventProcessingTime util.MetricsGetter,
) *PerfPane {
	return &PerfPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer: renderer,
			Dims:     dimensions,
		},
		renderTime:          renderTime,
		eventProcessingTime: eventProcessingTime,
	}
}
