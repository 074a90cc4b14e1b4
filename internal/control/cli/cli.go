// Package cli provides the command-line interface for timeruler.
package cli

// CommandLineOpts are the options and commands go-flags parses the command
// line into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TuiCommand     TuiCommand     `command:"tui" subcommands-optional:"true" description:"Run the interactive terminal ruler"`
	TicksCommand   TicksCommand   `command:"ticks" subcommands-optional:"true" description:"Print the ticks of a viewport"`
	LayoutCommand  LayoutCommand  `command:"layout" subcommands-optional:"true" description:"Print the card rectangles of a viewport as YAML"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true" description:"Show the program version"`
}

// Opts holds the parsed command line.
var Opts CommandLineOpts
