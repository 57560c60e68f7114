// Package main is the entry point for xcbatch.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcbatch/cmd/xcbatch/commands"
	"go.trai.ch/xcbatch/internal/app"
	_ "go.trai.ch/xcbatch/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	startedAt := time.Now()
	os.Exit(run(context.Background(), startedAt, os.Args[1:], os.Stdout, os.Stderr,
		func(ctx context.Context) (*app.Components, func(), error) {
			c, _, err := graft.ExecuteFor[*app.Components](ctx)
			return c, func() {}, err
		}))
}

func run(
	ctx context.Context,
	startedAt time.Time,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger may not exist yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App, startedAt)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
