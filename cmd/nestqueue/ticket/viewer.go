// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/digitalnest/nestqueue/cmd/nestqueue/cli"
	"github.com/digitalnest/nestqueue/lib/ticketstore"
	"github.com/digitalnest/nestqueue/lib/ticketui"
	"github.com/digitalnest/nestqueue/lib/tui"
)

// ViewerCommand returns the "viewer" subcommand that launches the
// interactive ticket TUI.
func ViewerCommand() *cli.Command {
	var session cli.SessionConfig
	var themeFlag string

	return &cli.Command{
		Name:    "viewer",
		Summary: "Interactive ticket viewer",
		Description: `Launch an interactive terminal UI for browsing the queue.

The viewer shows every ticket sorted most urgent first. Enter opens a
read-only detail panel for the selected ticket, c opens the create
form, and r refetches the collection from the service. Only one panel
is ever open at a time.`,
		Usage: "nestqueue ticket viewer [flags]",
		Examples: []cli.Example{
			{
				Description: "Open the viewer against the configured service",
				Command:     "nestqueue ticket viewer",
			},
			{
				Description: "Force the light palette",
				Command:     "nestqueue ticket viewer --theme light",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("viewer", pflag.ContinueOnError)
			session.AddFlags(flagSet)
			flagSet.StringVar(&themeFlag, "theme", "auto", "color palette: auto, dark, or light")
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

			var theme tui.Theme
			switch themeFlag {
			case "auto":
				theme = tui.DetectTheme()
			case "dark":
				theme = tui.DarkTheme
			case "light":
				theme = tui.LightTheme
			default:
				return cli.Validation("unknown theme %q (want auto, dark, or light)", themeFlag)
			}

			store := ticketstore.New(client, nil, logger)
			model := ticketui.NewModel(store, resolved.CreatedBy)
			model.SetTheme(theme)

			program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := program.Run(); err != nil {
				return cli.Internal("viewer: %v", err)
			}
			return nil
		},
	}
}
