package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskcli/internal/exitcode"
)

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return []string{"rm"} }
func (c *DeleteCmd) Synopsis() string  { return "Delete a task" }
func (c *DeleteCmd) Usage() string     { return "task-tracker delete <id>" }
func (c *DeleteCmd) NeedsStore() bool  { return true }

func (c *DeleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DeleteCmd) Run(ctx context.Context, svc TaskService, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		return userError(errOut, err)
	}

	if err := svc.DeleteTask(ctx, id); err != nil {
		return handleServiceError(out, errOut, err)
	}

	fmt.Fprintf(out, "Task %d deleted successfully.\n", id)
	return exitcode.Success
}
