package panes

import (
	"fmt"
	"time"

	"github.com/ja-he/timeruler/internal/control/gesture"
	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/potatolog"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/util"
)

// StatusSource is the part of the gesture controller the status bar reports
// on.
type StatusSource interface {
	Status() gesture.Status
	Domain() model.TimeDomain
	Snapshot() gesture.ScaleState
}

// StatusPane is a status bar that displays the current date and weekday, the
// gesture state and the selection or, lacking one, the latest log message.
type StatusPane struct {
	ui.LeafPane

	currentDate func() model.Date
	source      func() StatusSource
	selected    func() *model.Schedule
	logReader   potatolog.LogReader
	loc         *time.Location
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	bgStyle := p.Stylesheet.Status
	bgStyleEmph := bgStyle.DefaultEmphasized()

	date := p.currentDate()
	dateStr := date.ToString() + " " + date.ToWeekday().String()[:3]
	dateWidth := len(dateStr) + 2

	p.Renderer.DrawBox(x, y, w, h, bgStyle)
	p.Renderer.DrawBox(x, y, dateWidth, h, bgStyleEmph)
	p.Renderer.DrawText(x+1, y, dateWidth-1, 1, bgStyleEmph, dateStr)

	src := p.source()
	scale := src.Snapshot()
	gestureStr := fmt.Sprintf(
		" %s  unit %s  zoom %.2f  -- %s --",
		model.FromMillis(scale.CursorTime).In(p.loc).Format("15:04:05"),
		time.Duration(src.Domain().Unit)*time.Millisecond,
		scale.ScaleRatio,
		src.Status(),
	)
	p.Renderer.DrawText(x+dateWidth, y, len(gestureStr), 1, bgStyle, gestureStr)

	info := ""
	infoStyle := bgStyle.Italicized()
	if s := p.selected(); s != nil {
		info = fmt.Sprintf("%s (%s-%s)",
			s.Title,
			model.FromMillis(s.Start).In(p.loc).Format("15:04"),
			model.FromMillis(s.End).In(p.loc).Format("15:04"),
		)
		infoStyle = bgStyleEmph.Bolded()
	} else if entry, ok := p.logReader.Last(); ok {
		info = fmt.Sprint(entry["message"])
	}
	infoWidth := w - dateWidth - len(gestureStr) - 2
	if infoWidth > 0 && info != "" {
		info = util.TruncateAt(info, infoWidth)
		p.Renderer.DrawText(x+w-len([]rune(info))-1, y, infoWidth, 1, infoStyle, info)
	}
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *StatusPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.StatusPanePositionInfo{}
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	currentDate func() model.Date,
	source func() StatusSource,
	selected func() *model.Schedule,
	logReader potatolog.LogReader,
	loc *time.Location,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		currentDate: currentDate,
		source:      source,
		selected:    selected,
		logReader:   logReader,
		loc:         loc,
	}
}
