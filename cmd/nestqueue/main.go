// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

// Command nestqueue is the terminal client for the DigitalNEST help
// desk ticket queue.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/digitalnest/nestqueue/cmd/nestqueue/cli"
	"github.com/digitalnest/nestqueue/cmd/nestqueue/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output return an ExitError
		// with the desired code; no redundant "error:" line for
		// those.
		var exit *cli.ExitError
		if errors.As(err, &exit) {
			os.Exit(exit.Code)
		}

		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		var command *cli.CommandError
		if errors.As(err, &command) {
			os.Exit(command.ExitCode())
		}
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return commands.Root().Execute(ctx, os.Args[1:], cli.NewCommandLogger())
}
