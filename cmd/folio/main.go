// Package main is the entry point for the folio site builder.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/folio/cmd/folio/commands"
	"go.trai.ch/folio/internal/app"
	"go.trai.ch/folio/internal/core/domain"
	_ "go.trai.ch/folio/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interface - CLI
	var logs commands.LogSettings
	if components.ConcreteLogger != nil {
		logs = components.ConcreteLogger
	}
	cli := commands.New(components.App, logs)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		// Failures were already listed by the command's report.
		if errors.Is(err, domain.ErrBuildExecutionFailed) ||
			errors.Is(err, domain.ErrChecksFailed) ||
			errors.Is(err, domain.ErrConvertFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
