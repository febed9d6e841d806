// Package main is the entry point for the ouroinstall build and install tool.
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
	"go.trai.ch/ouroinstall/cmd/ouroinstall/commands"
	"go.trai.ch/ouroinstall/internal/app"
	"go.trai.ch/ouroinstall/internal/core/domain"
	_ "go.trai.ch/ouroinstall/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, graphProvider))
}

func graphProvider(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		return nil, nil, err
	}
	return c, func() { _ = c.Shutdown(context.Background()) }, nil
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
) int {
	// An operator interrupt cancels the in-flight child and every later phase.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return domain.ExitFailure
	}
	defer cleanup()

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		switch {
		case ctx.Err() != nil, errors.Is(err, domain.ErrInterrupted):
			return domain.ExitInterrupted
		case errors.Is(err, domain.ErrCommandFailed):
			// Already reported by the orchestrator.
			return domain.ExitFailure
		}
		components.Logger.Error(err)
		return domain.ExitFailure
	}
	return domain.ExitSuccess
}
