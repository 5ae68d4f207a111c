package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"taskcli/internal/exitcode"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a new task" }
func (c *AddCmd) Usage() string     { return "task-tracker add <description...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

// Run joins all positional arguments into the description, so quoting is
// optional.
func (c *AddCmd) Run(ctx context.Context, svc TaskService, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		return userError(errOut, ErrDescriptionRequired)
	}

	description := strings.Join(args, " ")
	id, err := svc.AddTask(ctx, description)
	if err != nil {
		return handleServiceError(out, errOut, err)
	}

	fmt.Fprintf(out, "Task added successfully (ID: %d)\n", id)
	return exitcode.Success
}
