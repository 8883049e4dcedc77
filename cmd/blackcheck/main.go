// Package main is the entry point for blackcheck.
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
	"go.trai.ch/blackcheck/cmd/blackcheck/commands"
	"go.trai.ch/blackcheck/internal/app"
	"go.trai.ch/blackcheck/internal/core/domain"
	_ "go.trai.ch/blackcheck/internal/wiring"
)

// ComponentProvider resolves the application components.
// The returned cleanup func is called once the command has finished.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, graftComponents))
}

func graftComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

// run executes the CLI and returns the process exit code: 0 when every check
// passed, 1 when a check failed or the command could not run.
func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// No logger without components.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	err = cli.Execute(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, domain.ErrCheckFailed):
		// The report already shows the failures.
		return 1
	default:
		components.Logger.Error(err)
		return 1
	}
}
