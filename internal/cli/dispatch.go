package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"regexp"
	"strings"

	"taskcli/internal/commands"
	"taskcli/internal/config"
	"taskcli/internal/exitcode"
	"taskcli/internal/middleware"
)

// ServiceFactory builds the task service for a resolved config. The
// returned cleanup runs after the command finishes.
type ServiceFactory func(ctx context.Context, cfg *config.Config) (commands.TaskService, func(), error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and dispatches to the matching command. Returns the
// exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		commands.PrintHelp(out)
		return exitcode.Success
	}

	cmdName := args[0]
	if cmdName == "-h" || cmdName == "--help" {
		cmdName = "help"
	}

	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var configPath string
	var filePath string
	var debug bool

	fs.StringVar(&configPath, "config", "", "")
	fs.StringVar(&filePath, "file", "", "")
	fs.BoolVar(&debug, "debug", false, "")

	cmd.RegisterFlags(fs)

	flagArgs, positionalArgs := splitArgs(fs, args)
	if err := fs.Parse(flagArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(out, "Usage: %s\n", cmd.Usage())
			return exitcode.Success
		}
		return flagError(errOut, err)
	}

	var svc commands.TaskService
	if cmd.NeedsStore() {
		cfg, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.ConfigError
		}
		cfg.ApplyOverrides(filePath, debug)

		if d.factory == nil {
			fmt.Fprintln(errOut, "error: no task store configured")
			return exitcode.ConfigError
		}
		created, cleanup, err := d.factory(ctx, cfg)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.ConfigError
		}
		if cleanup != nil {
			defer cleanup()
		}
		svc = created
	}

	run := middleware.Chain(func(ctx context.Context, command string, args []string) int {
		return cmd.Run(ctx, svc, args, out, errOut)
	}, middleware.RunID, middleware.Logging)

	return run(ctx, cmd.Name(), positionalArgs)
}

var negativeNumber = regexp.MustCompile(`^-\d+$`)

// splitArgs separates flag tokens from positionals so flags may appear
// anywhere after the command. Everything after "--" is positional, and so
// are "-", negative numbers and tokens containing a space.
func splitArgs(fs *flag.FlagSet, args []string) (flags, positionals []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return flags, append(positionals, args[i+1:]...)
		}
		if !looksLikeFlag(arg) {
			positionals = append(positionals, arg)
			continue
		}

		flags = append(flags, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil || isBoolFlag(f) {
			continue
		}
		if i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}
	return flags, positionals
}

func looksLikeFlag(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' &&
		!negativeNumber.MatchString(arg) &&
		!strings.Contains(arg, " ")
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			return config.Default(), nil
		}
		path = defaultPath
	}
	return config.Load(path)
}

func flagError(errOut io.Writer, err error) int {
	errStr := err.Error()

	if strings.HasPrefix(errStr, "flag needs an argument:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
		fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
		return exitcode.UserError
	}

	if strings.HasPrefix(errStr, "flag provided but not defined:") {
		flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
		return exitcode.UserError
	}

	fmt.Fprintf(errOut, "error: %s\n", errStr)
	return exitcode.UserError
}
