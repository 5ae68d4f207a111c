package commands

import (
	"context"
	"flag"
	"io"

	"taskcli/internal/exitcode"
	"taskcli/internal/output"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	jsonOutput bool
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List all tasks" }
func (c *ListCmd) Usage() string     { return "task-tracker list [--json]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.jsonOutput, "json", false, "")
}

func (c *ListCmd) Run(ctx context.Context, svc TaskService, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		return userError(errOut, ErrTooManyArgs)
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return handleServiceError(out, errOut, err)
	}

	if c.jsonOutput {
		if err := output.FormatTasksJSON(out, tasks); err != nil {
			return handleServiceError(out, errOut, err)
		}
		return exitcode.Success
	}

	output.FormatTasks(out, tasks)
	return exitcode.Success
}
