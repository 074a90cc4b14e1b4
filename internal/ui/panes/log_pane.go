package panes

import (
	"fmt"
	"sort"

	"github.com/ja-he/timeruler/internal/potatolog"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/util"
)

// LogPane shows the log, with the most recent log entries at the top.
type LogPane struct {
	ui.LeafPane

	logReader potatolog.LogReader

	titleString func() string
}

// Draw draws the log over top of all previously drawn contents, if it is
// currently visible.
func (p *LogPane) Draw() {
	if !p.IsVisible() {
		return
	}

	x, y, w, h := p.Dimensions()
	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Log)

	title := p.titleString()
	p.Renderer.DrawBox(x, y, w, 1, p.Stylesheet.LogTitle)
	p.Renderer.DrawText(x+(w/2-len(title)/2), y, len(title), 1, p.Stylesheet.LogTitle, title)

	const levelLen = len(" error ")
	const indent = levelLen + 1

	entries := p.logReader.Get()
	row := 2
	for i := len(entries) - 1; i >= 0 && row < h; i-- {
		entry := entries[i]
		level := str(entry["level"])

		p.Renderer.DrawText(x, y+row, levelLen, 1, p.levelStyle(level), util.PadCenter(level, levelLen))

		col := x + indent
		for _, part := range []struct {
			key   string
			style styling.DrawStyling
		}{
			{"message", p.Stylesheet.Log},
			{"caller", p.Stylesheet.Log.DefaultDimmed()},
			{"time", p.Stylesheet.Log.Italicized()},
		} {
			s := str(entry[part.key])
			if s == "" {
				continue
			}
			p.Renderer.DrawText(col, y+row, max(x+w-col, 0), 1, part.style, s)
			col += len([]rune(s)) + 1
		}
		row++

		keys := make([]string, 0, len(entry))
		for k := range entry {
			switch k {
			case "caller", "message", "time", "level":
			default:
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			if row >= h {
				break
			}
			p.Renderer.DrawText(x+indent, y+row, len(k), 1, p.Stylesheet.Log.Italicized(), k)
			p.Renderer.DrawText(x+indent+len(k)+2, y+row, max(w-indent-len(k)-2, 0), 1, p.Stylesheet.Log.DefaultDimmed(), str(entry[k]))
			row++
		}
	}
}

func (p *LogPane) levelStyle(level string) styling.DrawStyling {
	switch level {
	case "error":
		return p.Stylesheet.Log.Invert().Bolded()
	case "warn":
		return p.Stylesheet.Log.Invert()
	case "info":
		return p.Stylesheet.Log.Bolded()
	case "debug", "trace":
		return p.Stylesheet.Log.DefaultDimmed()
	}
	return p.Stylesheet.Log
}

func str(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// GetPositionInfo returns information on a requested position in this pane.
func (p *LogPane) GetPositionInfo(x, y int) ui.PositionInfo {
	return &ui.NoPanePositionInfo{}
}

// NewLogPane constructs and returns a new LogPane.
func NewLogPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	condition func() bool,
	titleString func() string,
	logReader potatolog.LogReader,
) *LogPane {
	return &LogPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: condition,
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		titleString: titleString,
		logReader:   logReader,
	}
}
