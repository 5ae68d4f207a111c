// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	Usage() string

	// NeedsStore reports whether Run needs a TaskService. help and version
	// run without opening the task file.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with the positional arguments left after
	// flag parsing. svc is nil when NeedsStore returns false.
	Run(ctx context.Context, svc TaskService, args []string, out, errOut io.Writer) int
}
