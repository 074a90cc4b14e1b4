package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/timeruler/internal/config"
	"github.com/ja-he/timeruler/internal/potatolog"
	"github.com/ja-he/timeruler/internal/styling"
	"github.com/ja-he/timeruler/internal/tui"
)

// TuiCommand is the `tui` command, running the interactive ruler.
type TuiCommand struct {
	Day           string   `short:"d" long:"day" description:"Specify the day to show" value-name:"<YYYY-MM-DD>"`
	Theme         string   `short:"t" long:"theme" choice:"light" choice:"dark" description:"Select a 'dark' or a 'light' default theme (note: only sets defaults, which are individually overridden by settings in config.yaml"`
	ICSFiles      []string `short:"i" long:"ics" description:"Additionally show the events of an iCalendar file (may be given multiple times)" value-name:"<file>"`
	LogOutputFile string   `short:"l" long:"log-output-file" description:"specify a log output file (otherwise logs dropped)"`
	LogPretty     bool     `short:"p" long:"log-pretty" description:"prettify logs to file"`
}

// Execute runs the TUI.
// (This gets called by `go-flags` when `tui` is provided on the command line)
func (command *TuiCommand) Execute(args []string) error {
	// set up stderr logger until TUI set up
	stderrLogger := log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// create TUI logger
	var logWriter io.Writer
	if command.LogOutputFile != "" {
		var fileLogger io.Writer
		file, err := os.OpenFile(command.LogOutputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			stderrLogger.Fatal().Err(err).Str("file", command.LogOutputFile).Msg("could not open file for logging")
		}
		defer file.Close()
		if command.LogPretty {
			fileLogger = zerolog.ConsoleWriter{Out: file}
		} else {
			fileLogger = file
		}
		logWriter = zerolog.MultiLevelWriter(fileLogger, potatolog.GlobalMemoryLogReaderWriter)
	} else {
		logWriter = potatolog.GlobalMemoryLogReaderWriter
	}
	tuiLogger := zerolog.New(logWriter).With().Timestamp().Caller().Logger()

	// temporarily log to both (in case the TUI doesn't get set we want the info
	// on the stderr logger, otherwise the TUI logger is relevant)
	log.Logger = log.Output(zerolog.MultiLevelWriter(stderrLogger, tuiLogger))

	theme := parseTheme(command.Theme)
	cfg, envData, err := loadEnvironment(theme)
	if err != nil {
		return err
	}

	loc := time.Local
	initialDay, err := parseDay(command.Day, time.Now())
	if err != nil {
		return err
	}

	stylesheet, err := styling.NewStylesheetFromConfig(cfg.Stylesheet)
	if err != nil {
		return fmt.Errorf("invalid stylesheet (%w)", err)
	}
	categories, err := styling.NewCategoryStylingFromConfig(cfg.Categories, theme == config.Dark)
	if err != nil {
		return fmt.Errorf("invalid categories (%w)", err)
	}

	screenHandler, err := tui.NewTUIScreenHandler()
	if err != nil {
		return fmt.Errorf("could not set up screen (%w)", err)
	}

	controller, err := NewController(
		initialDay,
		envData,
		cfg,
		*stylesheet,
		categories,
		scheduleProvider(cfg, command.ICSFiles, loc),
		screenHandler,
		loc,
	)
	if err != nil {
		screenHandler.Fini()
		return err
	}

	// now that the screen is initialized, we'll always want the TUI logger, so
	// we're making it the global logger
	log.Logger = tuiLogger

	controller.Run()
	return nil
}
