// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/digitalnest/nestqueue/lib/ticket"
)

func sampleTickets() []ticket.Ticket {
	created := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	return []ticket.Ticket{
		{
			ID:       "1",
			Title:    "Wifi down in main lab",
			Site:     ticket.SiteWatsonville,
			Category: ticket.CategoryNetwork,
			Priority: 1,
			Status:   ticket.StatusOpen,

			CreatedOn: created,
			UpdatedAt: created,
		},
		{
			ID:         "2",
			Title:      "Replace projector bulb",
			Site:       ticket.SiteSalinas,
			Category:   ticket.CategoryHardware,
			AssignedTo: "esteban@digitalnest.org",
			Priority:   3,
			Status:     ticket.StatusClosed,
			CreatedOn:  created,
			UpdatedAt:  created,
		},
	}
}

func TestPrintTable(t *testing.T) {
	var out strings.Builder
	if err := printTable(&out, sampleTickets(), "", ""); err != nil {
		t.Fatalf("printTable: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"ID", "PRIORITY", "TITLE",
		"Wifi down in main lab", "1 (High)",
		"Replace projector bulb", "3 (Low)",
		"esteban@digitalnest.org",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("table missing %q:\n%s", want, got)
		}
	}
	// The unassigned ticket shows a dash, not an empty cell.
	if !strings.Contains(got, "-") {
		t.Errorf("table should mark unassigned tickets:\n%s", got)
	}
}

func TestPrintTableFilters(t *testing.T) {
	var out strings.Builder
	if err := printTable(&out, sampleTickets(), "Open", ""); err != nil {
		t.Fatalf("printTable: %v", err)
	}
	if strings.Contains(out.String(), "Replace projector bulb") {
		t.Errorf("closed ticket should be filtered out:\n%s", out.String())
	}

	out.Reset()
	if err := printTable(&out, sampleTickets(), "Rejected", ""); err != nil {
		t.Fatalf("printTable: %v", err)
	}
	if !strings.Contains(out.String(), "no tickets match") {
		t.Errorf("empty filtered result should say so:\n%s", out.String())
	}
}
