// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/digitalnest/nestqueue/cmd/nestqueue/cli"
	"github.com/digitalnest/nestqueue/lib/ticket"
	"github.com/digitalnest/nestqueue/lib/ticketstore"
)

// CreateCommand returns the "create" subcommand that submits one
// ticket from flags.
func CreateCommand() *cli.Command {
	var session cli.SessionConfig
	var title string
	var description string
	var site string
	var category string
	var assignedTo string
	var priority int
	var status string

	return &cli.Command{
		Name:    "create",
		Summary: "Create a ticket",
		Description: `Submit a new ticket to the service. The draft is validated locally
before anything goes on the wire; field errors are printed one per
line and exit with status 2.

Defaults match a walk-up request at the Watsonville center: status
Open, priority 5 (least urgent), category Software.`,
		Usage: "nestqueue ticket create --title <title> --description <text> [flags]",
		Examples: []cli.Example{
			{
				Description: "Minimal ticket with defaults",
				Command:     `nestqueue ticket create --title "Wifi down in main lab" --description "No devices can connect"`,
			},
			{
				Description: "Urgent hardware ticket at another site",
				Command:     `nestqueue ticket create --title "Server room AC failed" --description "Temp climbing" --site Salinas --category Hardware --priority 1`,
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("create", pflag.ContinueOnError)
			session.AddFlags(flagSet)
			flagSet.StringVar(&title, "title", "", "ticket title (required)")
			flagSet.StringVar(&description, "description", "", "ticket description (required)")
			flagSet.StringVar(&site, "site", string(ticket.SiteWatsonville), "center the ticket concerns")
			flagSet.StringVar(&category, "category", string(ticket.CategorySoftware), "ticket category")
			flagSet.StringVar(&assignedTo, "assigned-to", "", "assignee email (default unassigned)")
			flagSet.IntVar(&priority, "priority", int(ticket.PriorityMax), "urgency, 1 (most urgent) to 5")
			flagSet.StringVar(&status, "status", string(ticket.StatusOpen), "initial status")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			resolved, err := session.Resolve()
			if err != nil {
				return cli.Validation("%v", err)
			}
			client, err := resolved.NewClient(logger)
			if err != nil {
				return cli.Validation("%v", err)
			}

			draft := ticket.Draft{
				Title:       title,
				Description: description,
				Site:        ticket.Site(site),
				Category:    ticket.Category(category),
				AssignedTo:  assignedTo,
				CreatedBy:   resolved.CreatedBy,
				Priority:    ticket.Priority(priority),
				Status:      ticket.Status(status),
			}

			store := ticketstore.New(client, nil, logger)
			err = store.Create(ctx, draft, ticketstore.Callbacks{
				OnSuccess: func(created ticket.Ticket) {
					fmt.Printf("created ticket %s: %s\n", created.ID, created.Title)
				},
			})
			if err == nil {
				return nil
			}

			var fieldErrors ticket.ValidationErrors
			if errors.As(err, &fieldErrors) {
				for _, fieldError := range fieldErrors {
					fmt.Fprintf(os.Stderr, "%s: %s\n", fieldError.Field, fieldError.Message)
				}
				return &cli.ExitError{Code: 2}
			}
			return cli.Transient("create ticket: %v", err)
		},
	}
}
