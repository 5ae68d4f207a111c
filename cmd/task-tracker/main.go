// Package main is the entry point for the task-tracker CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"taskcli/internal/app"
	"taskcli/internal/cli"
	"taskcli/internal/commands"
	"taskcli/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	factory := func(ctx context.Context, cfg *config.Config) (commands.TaskService, func(), error) {
		a := app.New(cfg)
		if err := a.Init(ctx); err != nil {
			a.Shutdown()
			return nil, nil, err
		}
		return a.Service(), a.Shutdown, nil
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)
	code := dispatcher.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	cancel()
	os.Exit(code)
}
