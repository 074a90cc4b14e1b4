package panes

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/layout"
	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
)

// CardsPane draws the card band and the schedule cards, and resolves
// positions to the cards drawn there.
type CardsPane struct {
	ui.LeafPane

	geometry   *Geometry
	view       func() RulerView
	layout     *layout.CardLayout
	categories *styling.CategoryStyling

	schedules func() []*model.Schedule
	selected  func() *model.Schedule
}

// Draw draws the band, the cursor line through it and the cards.
func (p *CardsPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	extent := p.geometry.Extent()
	mapper := p.view().Mapper(extent)

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)

	p.layout.Baseline = p.geometry.Baseline()
	bx, by, bw, bh := cellBox(p.layout.Band(extent))
	p.Renderer.DrawBox(bx, by, bw, bh, p.Stylesheet.CardBand)

	cursorCell := int(math.Floor(mapper.CursorPixel))
	if p.geometry.Orientation == ui.Vertical {
		p.Renderer.DrawBox(x, y+cursorCell, w, 1, p.Stylesheet.Cursor.DefaultDimmed())
	} else {
		p.Renderer.DrawBox(x+cursorCell, y, 1, h, p.Stylesheet.Cursor.DefaultDimmed())
	}

	p.layout.Layout(mapper, 0, extent, p.schedules(), layout.CardRendererFunc(p.drawCard))
}

func (p *CardsPane) drawCard(rect ui.Rect, s *model.Schedule) {
	x, y, w, h := cellBox(rect)

	style, err := p.categories.GetStyle(s.Category)
	if err != nil {
		log.Trace().Str("category", s.Category).Msg("no style for category, using fallback")
		style = p.Stylesheet.CategoryFallback
	}
	if p.selected() == s {
		style = style.Invert()
	}

	p.Renderer.DrawBox(x, y, w, h, style)
	p.Renderer.DrawText(x+1, y, w-2, 1, style.Bolded(), s.Title)
	if h > 1 && s.Text != "" {
		p.Renderer.DrawText(x+1, y+1, w-2, h-1, style.Italicized(), s.Text)
	}
}

// HitTest returns the schedule whose card was drawn at the point, if any.
func (p *CardsPane) HitTest(x, y float64) *model.Schedule {
	return p.layout.HitTest(x, y)
}

// GetPositionInfo returns the schedule and time at the given position.
func (p *CardsPane) GetPositionInfo(x, y int) ui.PositionInfo {
	mapper := p.view().Mapper(p.geometry.Extent())
	return &ui.CardsPanePositionInfo{
		Schedule: p.HitTest(float64(x)+0.5, float64(y)+0.5),
		Time:     mapper.PixelToTime(float64(p.geometry.MainCell(x, y)) + 0.5),
	}
}

// NewCardsPane constructs and returns a new CardsPane.
func NewCardsPane(
	renderer ui.ConstrainedRenderer,
	geometry *Geometry,
	stylesheet styling.Stylesheet,
	categories *styling.CategoryStyling,
	view func() RulerView,
	cardLayout *layout.CardLayout,
	schedules func() []*model.Schedule,
	selected func() *model.Schedule,
) *CardsPane {
	return &CardsPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       geometry.CardsDims,
			Stylesheet: stylesheet,
		},
		geometry:   geometry,
		view:       view,
		layout:     cardLayout,
		categories: categories,
		schedules:  schedules,
		selected:   selected,
	}
}
