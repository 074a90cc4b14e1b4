package panes

import (
	"math"
	"time"

	"github.com/ja-he/timeruler/internal/layout"
	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
)

// RulerView is the part of the gesture controller the ruler and cards panes
// read their viewport from.
type RulerView interface {
	Domain() model.TimeDomain
	Mapper(viewportSize float64) ui.Mapper
}

// RulerPane draws the ruler: a background shaded by daylight and domain
// bounds, the tick marks with their time labels and the cursor line.
type RulerPane struct {
	ui.LeafPane

	geometry *Geometry
	view     func() RulerView
	sunTimes func() *model.SunTimes
	loc      *time.Location
}

// Draw draws the ruler.
func (p *RulerPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	domain := p.view().Domain()
	extent := p.geometry.Extent()
	mapper := p.view().Mapper(extent)
	vertical := p.geometry.Orientation == ui.Vertical

	lead := mapper.DomainLeadPixel(domain)
	trail, hasTrail := mapper.DomainTrailPixel(domain, extent)
	sun := p.sunTimes()
	for i := 0; i < int(extent); i++ {
		center := float64(i) + 0.5
		style := p.Stylesheet.RulerDay
		switch {
		case center < lead || (hasTrail && center > trail):
			style = p.Stylesheet.RulerOutOfDomain
		case sun != nil && !sun.IsDaylight(mapper.PixelToTime(center)):
			style = p.Stylesheet.RulerNight
		}
		if vertical {
			p.Renderer.DrawBox(x, y+i, w, 1, style)
		} else {
			p.Renderer.DrawBox(x+i, y, 1, h, style)
		}
	}

	format := p.labelFormat(domain)
	labelWidth := len(format)
	spacing := mapper.TickSpacePixel(domain.Unit)

	layout.NewTickSequence(domain, mapper, extent).Render(layout.TickRendererFunc(func(t layout.Tick) {
		cell := int(math.Floor(t.Pixel))
		if cell < 0 || cell >= int(extent) {
			return
		}
		style := p.Stylesheet.Tick
		if t.Key {
			style = p.Stylesheet.KeyTick
		}
		label := p.label(t.Time, format)
		if vertical {
			p.Renderer.DrawText(x+max(w-labelWidth-2, 0), y+cell, labelWidth, 1, style, label)
			p.Renderer.DrawText(x+w-1, y+cell, 1, 1, style, "─")
		} else {
			p.Renderer.DrawText(x+cell, y, 1, 1, style, "│")
			if t.Key || spacing > float64(labelWidth) {
				p.Renderer.DrawText(x+cell, y+1, labelWidth, 1, style, label)
			}
		}
	}))

	cursorCell := int(math.Floor(mapper.CursorPixel))
	cursorLabel := p.label(mapper.CursorTime, format)
	if vertical {
		p.Renderer.DrawBox(x, y+cursorCell, w, 1, p.Stylesheet.Cursor)
		p.Renderer.DrawText(x+max(w-labelWidth-2, 0), y+cursorCell, labelWidth, 1, p.Stylesheet.Cursor, cursorLabel)
	} else {
		p.Renderer.DrawBox(x+cursorCell, y, 1, h, p.Stylesheet.Cursor)
		p.Renderer.DrawText(x+cursorCell+1, y+h-1, labelWidth, 1, p.Stylesheet.Cursor, cursorLabel)
	}
}

func (p *RulerPane) labelFormat(domain model.TimeDomain) string {
	if domain.Unit < int64(time.Minute/time.Millisecond) {
		return "15:04:05"
	}
	return "15:04"
}

func (p *RulerPane) label(t int64, format string) string {
	return model.FromMillis(t).In(p.loc).Format(format)
}

// GetPositionInfo returns the time at the given position.
func (p *RulerPane) GetPositionInfo(x, y int) ui.PositionInfo {
	mapper := p.view().Mapper(p.geometry.Extent())
	return &ui.RulerPanePositionInfo{
		Time: mapper.PixelToTime(float64(p.geometry.MainCell(x, y)) + 0.5),
	}
}

// NewRulerPane constructs and returns a new RulerPane.
// sunTimes may return nil, in which case no night shading is drawn.
func NewRulerPane(
	renderer ui.ConstrainedRenderer,
	geometry *Geometry,
	stylesheet styling.Stylesheet,
	view func() RulerView,
	sunTimes func() *model.SunTimes,
	loc *time.Location,
) *RulerPane {
	return &RulerPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       geometry.RulerDims,
			Stylesheet: stylesheet,
		},
		geometry: geometry,
		view:     view,
		sunTimes: sunTimes,
		loc:      loc,
	}
}
