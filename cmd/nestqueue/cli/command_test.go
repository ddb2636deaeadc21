// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestExecuteDispatchesSubcommand(t *testing.T) {
	var ran []string
	root := &Command{
		Name: "nestqueue",
		Subcommands: []*Command{
			{
				Name: "ticket",
				Subcommands: []*Command{
					{
						Name: "list",
						Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
							ran = append(ran, "list")
							return nil
						},
					},
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"ticket", "list"}, discardLogger()); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(ran) != 1 || ran[0] != "list" {
		t.Errorf("ran = %v, want [list]", ran)
	}
}

func TestExecuteUnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "nestqueue",
		Subcommands: []*Command{
			{Name: "ticket", Run: func(context.Context, []string, *slog.Logger) error { return nil }},
		},
	}

	err := root.Execute(context.Background(), []string{"tickt"}, discardLogger())
	if err == nil {
		t.Fatal("expected an error for an unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "ticket"`) {
		t.Errorf("error should suggest the close match, got: %v", err)
	}
}

func TestExecuteParsesFlags(t *testing.T) {
	var limit int
	var got []string
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.IntVar(&limit, "limit", 0, "maximum rows")
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			got = args
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--limit", "5", "extra"}, discardLogger()); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if limit != 5 {
		t.Errorf("limit = %d, want 5", limit)
	}
	if len(got) != 1 || got[0] != "extra" {
		t.Errorf("positional args = %v, want [extra]", got)
	}
}

func TestExecuteUnknownFlagSuggests(t *testing.T) {
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.String("server", "", "")
			return flagSet
		},
		Run: func(context.Context, []string, *slog.Logger) error { return nil },
	}

	err := command.Execute(context.Background(), []string{"--servre", "x"}, discardLogger())
	if err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
	if !strings.Contains(err.Error(), "--server") {
		t.Errorf("error should suggest --server, got: %v", err)
	}
}

func TestPrintHelpListsSubcommands(t *testing.T) {
	root := &Command{
		Name:    "nestqueue",
		Summary: "DigitalNEST help desk tickets",
		Subcommands: []*Command{
			{Name: "ticket", Summary: "Browse and create tickets"},
		},
	}

	var help strings.Builder
	root.PrintHelp(&help)
	for _, want := range []string{"nestqueue <command>", "ticket", "Browse and create tickets"} {
		if !strings.Contains(help.String(), want) {
			t.Errorf("help output missing %q:\n%s", want, help.String())
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"ticket", "ticket", 0},
		{"tickt", "ticket", 1},
		{"lst", "list", 1},
		{"viewer", "create", 6},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}
