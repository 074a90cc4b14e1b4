package cli

import (
	"fmt"
	"io"
	"os"
)

// For proper builds, these variables should be set via ldflags.
var version = "development"
var hash = "unknown"

// VersionCommand is the `version` command.
type VersionCommand struct{}

// Execute prints the version.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	return showVersion(os.Stdout)
}

func showVersion(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s (%s)\n", version, hash)
	return err
}
