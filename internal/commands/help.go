package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "task-tracker help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, svc TaskService, args []string, out, errOut io.Writer) int {
	PrintHelp(out)
	return exitcode.Success
}

// PrintHelp writes the usage text. It is also printed when no command is given.
func PrintHelp(out io.Writer) {
	fmt.Fprint(out, helpText)
}

const helpText = `Simple CLI task tracker

Usage:
  task-tracker add [common flags] <description...>   Add a new task
  task-tracker list [common flags] [--json]          List all tasks (alias: ls)
  task-tracker delete [common flags] <id>            Delete a task (alias: rm)
  task-tracker done [common flags] <id>              Mark a task as done
  task-tracker undone [common flags] <id>            Mark a task as undone
  task-tracker help
  task-tracker version

Common flags:
  --config <path>  Config file (default $XDG_CONFIG_HOME/task-tracker/config.yml)
  --file <path>    Task file (default tasks.json, or $TASK_TRACKER_FILE)
  --debug          Print debug logs to stderr

Flags may come before or after the arguments. Use -- to pass an argument
that starts with a dash, e.g. task-tracker add -- -5 pushups
`
