package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/exitcode"
)

func init() {
	Register(&DoneCmd{})
	Register(&UndoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task as done" }
func (c *DoneCmd) Usage() string     { return "task-tracker done <id>" }
func (c *DoneCmd) NeedsStore() bool  { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, svc TaskService, args []string, out, errOut io.Writer) int {
	return runSetStatus(ctx, svc.MarkDone, "done", args, out, errOut)
}

// UndoneCmd implements the undone command.
type UndoneCmd struct{}

func (c *UndoneCmd) Name() string      { return "undone" }
func (c *UndoneCmd) Aliases() []string { return nil }
func (c *UndoneCmd) Synopsis() string  { return "Mark a task as undone" }
func (c *UndoneCmd) Usage() string     { return "task-tracker undone <id>" }
func (c *UndoneCmd) NeedsStore() bool  { return true }

func (c *UndoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UndoneCmd) Run(ctx context.Context, svc TaskService, args []string, out, errOut io.Writer) int {
	return runSetStatus(ctx, svc.MarkUndone, "undone", args, out, errOut)
}

// runSetStatus is the shared implementation for done and undone.
func runSetStatus(ctx context.Context, mark func(context.Context, int) error, label string, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		return userError(errOut, err)
	}

	if err := mark(ctx, id); err != nil {
		return handleServiceError(out, errOut, err)
	}

	fmt.Fprintf(out, "Task %d marked as %s.\n", id, label)
	return exitcode.Success
}
