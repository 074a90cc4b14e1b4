package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/timeruler/internal/layout"
	"github.com/ja-he/timeruler/internal/model"
	"github.com/ja-he/timeruler/internal/storage"
	"github.com/ja-he/timeruler/internal/ui"
	"github.com/ja-he/timeruler/internal/ui/panes"
)

// LayoutCommand is the `layout` command, printing the rectangles of the cards
// visible in a viewport of the ruler.
type LayoutCommand struct {
	ViewportOpts

	Cross    float64  `short:"w" long:"cross" default:"80" description:"Viewport size across the ruler, in cells"`
	ICSFiles []string `short:"i" long:"ics" description:"Additionally show the events of an iCalendar file (may be given multiple times)" value-name:"<file>"`
	Theme    string   `short:"t" long:"theme" choice:"light" choice:"dark" default:"dark" description:"Select a 'dark' or a 'light' default theme (only affects the default configuration)"`

	out io.Writer
	loc *time.Location
}

// CardRecord is a laid out card as printed by the layout command.
type CardRecord struct {
	Title    string  `yaml:"title"`
	Category string  `yaml:"category,omitempty"`
	Start    string  `yaml:"start"`
	End      string  `yaml:"end"`
	Rect     RectRec `yaml:"rect"`
}

// RectRec is a rectangle as printed by the layout command.
type RectRec struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Execute runs the layout command.
// (This gets called by `go-flags` when `layout` is provided on the command
// line)
func (command *LayoutCommand) Execute(args []string) error {
	if command.out == nil {
		command.out = os.Stdout
	}
	if command.loc == nil {
		command.loc = time.Local
	}
	if command.Cross <= 0 {
		return fmt.Errorf("cross size must be positive, got %f", command.Cross)
	}

	cfg, _, err := loadEnvironment(parseTheme(command.Theme))
	if err != nil {
		return err
	}
	orientation, err := ui.ParseOrientation(cfg.Ruler.Orientation)
	if err != nil {
		return err
	}

	ruler, _, err := command.viewport(cfg, command.loc)
	if err != nil {
		return err
	}

	schedules, err := storage.SchedulesForDomain(scheduleProvider(cfg, command.ICSFiles, command.loc), ruler.Domain())
	if err != nil {
		return err
	}
	log.Debug().Int("count", len(schedules)).Msg("got schedules")

	// the geometry's screen includes the status row, the viewport does not
	extent, cross := int(command.Extent), int(command.Cross)
	geometry := &panes.Geometry{
		Orientation:      orientation,
		BaselineFraction: cfg.Ruler.BaselinePosition,
		Screen: func() (x, y, w, h int) {
			if orientation == ui.Horizontal {
				return 0, 0, extent, cross + 1
			}
			return 0, 0, cross, extent + 1
		},
	}

	cardLayout := layout.NewCardLayout(orientation, geometry.Baseline(), cfg.Cards.Width, cfg.Cards.Margin)
	positions := cardLayout.Layout(ruler.Mapper(command.Extent), 0, command.Extent, schedules, nil)

	records := make([]CardRecord, 0, len(positions))
	for _, p := range positions {
		records = append(records, CardRecord{
			Title:    p.Schedule.Title,
			Category: p.Schedule.Category,
			Start:    model.FromMillis(p.Schedule.Start).In(command.loc).Format("15:04"),
			End:      model.FromMillis(p.Schedule.End).In(command.loc).Format("15:04"),
			Rect: RectRec{
				Left:   p.Rect.Left,
				Top:    p.Rect.Top,
				Right:  p.Rect.Right,
				Bottom: p.Rect.Bottom,
			},
		})
	}

	encoder := yaml.NewEncoder(command.out)
	defer encoder.Close()
	return encoder.Encode(records)
}
