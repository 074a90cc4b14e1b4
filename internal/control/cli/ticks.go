package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ja-he/timeruler/internal/layout"
	"github.com/ja-he/timeruler/internal/model"
)

// TicksCommand is the `ticks` command, printing the ticks a viewport of the
// ruler would show, in the order they are generated.
type TicksCommand struct {
	ViewportOpts

	Theme string `short:"t" long:"theme" choice:"light" choice:"dark" default:"dark" description:"Select a 'dark' or a 'light' default theme (only affects the default configuration)"`

	out io.Writer
	loc *time.Location
}

// Execute runs the ticks command.
// (This gets called by `go-flags` when `ticks` is provided on the command
// line)
func (command *TicksCommand) Execute(args []string) error {
	if command.out == nil {
		command.out = os.Stdout
	}
	if command.loc == nil {
		command.loc = time.Local
	}

	cfg, _, err := loadEnvironment(parseTheme(command.Theme))
	if err != nil {
		return err
	}

	ruler, _, err := command.viewport(cfg, command.loc)
	if err != nil {
		return err
	}

	domain := ruler.Domain()
	ticks := layout.NewTickSequence(domain, ruler.Mapper(command.Extent), command.Extent).Collect()
	for _, tick := range ticks {
		key := ""
		if tick.Key {
			key = "  key"
		}
		_, err := fmt.Fprintf(command.out, "%s %8.2f%s\n",
			model.FromMillis(tick.Time).In(command.loc).Format("15:04:05"),
			tick.Pixel,
			key,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
