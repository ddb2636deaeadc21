// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the nestqueue command tree.
package commands

import (
	"github.com/digitalnest/nestqueue/cmd/nestqueue/cli"
	"github.com/digitalnest/nestqueue/cmd/nestqueue/ticket"
)

// Root returns the top-level nestqueue command.
func Root() *cli.Command {
	return &cli.Command{
		Name:    "nestqueue",
		Summary: "DigitalNEST help desk tickets",
		Description: `nestqueue is the terminal client for the DigitalNEST help desk:
browse the ticket queue, create tickets, and watch the queue live in
an interactive viewer.`,
		Subcommands: []*cli.Command{
			ticket.Command(),
		},
	}
}
