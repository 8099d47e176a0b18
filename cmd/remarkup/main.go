// Package main is the entry point for the remarkup CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/addaleax/remarkup/cmd/remarkup/app"
)

// Populated by goreleaser at release time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

// shutdownGrace bounds cleanup when a command fails; the signal context may
// already be cancelled by then.
const shutdownGrace = 5 * time.Second

func main() {
	os.Exit(run())
}

func run() int {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	ctx, stop := app.SignalContext()
	defer stop()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()

		if shutdownErr := application.Shutdown(shutdownCtx); shutdownErr != nil {
			application.Logger().Error().Err(shutdownErr).Msg("Shutdown failed while handling error")
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	return 0
}
