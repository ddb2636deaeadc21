// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/digitalnest/nestqueue/cmd/nestqueue/cli"
	"github.com/digitalnest/nestqueue/lib/ticket"
	"github.com/digitalnest/nestqueue/lib/ticketstore"
)

// ListCommand returns the "list" subcommand that prints the queue as
// a table.
func ListCommand() *cli.Command {
	var session cli.SessionConfig
	var statusFilter string
	var siteFilter string

	return &cli.Command{
		Name:    "list",
		Summary: "Print the ticket queue",
		Description: `Fetch the ticket collection and print it as a table, most urgent
first. Filters narrow the output; an empty result after filtering is
not an error.`,
		Usage: "nestqueue ticket list [flags]",
		Examples: []cli.Example{
			{
				Description: "All tickets, most urgent first",
				Command:     "nestqueue ticket list",
			},
			{
				Description: "Open tickets at one center",
				Command:     "nestqueue ticket list --status Open --site Watsonville",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			session.AddFlags(flagSet)
			flagSet.StringVar(&statusFilter, "status", "", "only show tickets with this status")
			flagSet.StringVar(&siteFilter, "site", "", "only show tickets for this site")
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

			store := ticketstore.New(client, nil, logger)
			tickets, err := store.Load(ctx)
			if err != nil {
				return cli.Transient("fetch tickets from %s: %v", resolved.ServerURL, err)
			}

			ticket.SortByPriority(tickets)
			return printTable(os.Stdout, tickets, statusFilter, siteFilter)
		},
	}
}

// printTable writes the filtered collection as an aligned table.
func printTable(out io.Writer, tickets []ticket.Ticket, statusFilter, siteFilter string) error {
	table := tabwriter.NewWriter(out, 2, 0, 2, ' ', 0)
	fmt.Fprintln(table, "ID\tPRIORITY\tSTATUS\tSITE\tCATEGORY\tASSIGNED TO\tTITLE")

	shown := 0
	for _, item := range tickets {
		if statusFilter != "" && string(item.Status) != statusFilter {
			continue
		}
		if siteFilter != "" && string(item.Site) != siteFilter {
			continue
		}
		assignee := item.AssignedTo
		if assignee == "" {
			assignee = "-"
		}
		fmt.Fprintf(table, "%s\t%d (%s)\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, int(item.Priority), item.Priority.Label(),
			item.Status.Label(), item.Site, item.Category, assignee, item.Title)
		shown++
	}
	if err := table.Flush(); err != nil {
		return cli.Internal("write table: %v", err)
	}
	if shown == 0 && (statusFilter != "" || siteFilter != "") {
		fmt.Fprintln(out, "no tickets match the filters")
	}
	return nil
}
