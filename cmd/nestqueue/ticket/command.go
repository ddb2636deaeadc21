// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticket implements the "nestqueue ticket" command tree:
// listing the queue, creating tickets, and the interactive viewer.
package ticket

import (
	"github.com/digitalnest/nestqueue/cmd/nestqueue/cli"
)

// Command returns the "ticket" command with its subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "ticket",
		Summary: "Browse and create help desk tickets",
		Description: `Work with the DigitalNEST help desk queue.

Every subcommand talks to the ticket service configured via --server
or the config file. "list" and "create" are one-shot commands for
scripting; "viewer" opens the interactive terminal UI.`,
		Subcommands: []*cli.Command{
			ListCommand(),
			CreateCommand(),
			ViewerCommand(),
		},
	}
}
