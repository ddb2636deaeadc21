// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"encoding/json"
	"testing"
	"time"
)

func TestPriorityValid(t *testing.T) {
	for priority := PriorityMin; priority <= PriorityMax; priority++ {
		if !priority.Valid() {
			t.Errorf("priority %d should be valid", int(priority))
		}
	}
	for _, priority := range []Priority{0, 6, -1, 100} {
		if priority.Valid() {
			t.Errorf("priority %d should be invalid", int(priority))
		}
	}
}

func TestPriorityLabel(t *testing.T) {
	tests := []struct {
		priority Priority
		want     string
	}{
		{1, "High"},
		{2, "Medium"},
		{3, "Low"},
		{4, "Medium"},
		{5, "Low"},
		{0, "Unknown"},
		{6, "Unknown"},
	}
	for _, test := range tests {
		if got := test.priority.Label(); got != test.want {
			t.Errorf("Priority(%d).Label() = %q, want %q", int(test.priority), got, test.want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	for _, status := range Statuses {
		if got := status.Label(); got != string(status) {
			t.Errorf("Status(%q).Label() = %q, want the status itself", string(status), got)
		}
	}
	// Malformed values from the remote side must render as "Unknown",
	// never crash or leak raw wire data.
	if got := Status("in_progress").Label(); got != "Unknown" {
		t.Errorf("unrecognized status label = %q, want Unknown", got)
	}
	if got := Status("").Label(); got != "Unknown" {
		t.Errorf("empty status label = %q, want Unknown", got)
	}
}

func TestEnumerationOrder(t *testing.T) {
	// Enumeration order is the display/selection order in choice
	// controls and is part of the contract.
	if Sites[0] != SiteSalinas || Sites[len(Sites)-1] != SiteStockton {
		t.Errorf("unexpected site order: %v", Sites)
	}
	if Categories[0] != CategorySoftware {
		t.Errorf("unexpected category order: %v", Categories)
	}
	if Statuses[0] != StatusOpen {
		t.Errorf("unexpected status order: %v", Statuses)
	}
	// Priorities present least-urgent first, matching the create
	// form's default of 5.
	if Priorities[0] != 5 || Priorities[len(Priorities)-1] != 1 {
		t.Errorf("unexpected priority order: %v", Priorities)
	}
}

func TestSortByPriority(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	tickets := []Ticket{
		{ID: "2", Priority: 5, UpdatedAt: base},
		{ID: "1", Priority: 1, UpdatedAt: base},
		{ID: "3", Priority: 3, UpdatedAt: base},
		{ID: "4", Priority: 3, UpdatedAt: base.Add(time.Hour)},
	}

	SortByPriority(tickets)

	if tickets[0].ID != "1" {
		t.Errorf("first ticket should be priority 1, got %s (P%d)", tickets[0].ID, tickets[0].Priority)
	}
	if tickets[3].ID != "2" {
		t.Errorf("last ticket should be priority 5, got %s (P%d)", tickets[3].ID, tickets[3].Priority)
	}
	// Same priority: most recently updated first.
	if tickets[1].ID != "4" || tickets[2].ID != "3" {
		t.Errorf("priority ties should order by UpdatedAt descending, got %s then %s", tickets[1].ID, tickets[2].ID)
	}
}

func TestTicketJSONRoundTrip(t *testing.T) {
	// The wire shape uses the camelCase field names of the ticket
	// service. Decoding a service response must populate every field.
	wire := `{
		"id": "tkt-42",
		"title": "Printer down",
		"description": "No toner",
		"site": "Gilroy",
		"category": "Hardware",
		"assignedTo": "sam@digitalnest.org",
		"createdBy": "techsquad@digitalnest.org",
		"priority": 2,
		"status": "Open",
		"createdOn": "2026-08-27T10:00:00Z",
		"updatedAt": "2026-08-27T12:30:00Z"
	}`

	var decoded Ticket
	if err := json.Unmarshal([]byte(wire), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.ID != "tkt-42" || decoded.Site != SiteGilroy || decoded.Category != CategoryHardware {
		t.Errorf("unexpected decode: %+v", decoded)
	}
	if decoded.Priority != 2 || decoded.Status != StatusOpen {
		t.Errorf("priority/status decode: got P%d %q", decoded.Priority, decoded.Status)
	}
	if !decoded.UpdatedAt.After(decoded.CreatedOn) {
		t.Errorf("timestamps out of order: %v / %v", decoded.CreatedOn, decoded.UpdatedAt)
	}
}

func TestDraftJSONOmitsAssignedToWhenEmpty(t *testing.T) {
	draft := Draft{
		Title:       "Printer down",
		Description: "No toner",
		Site:        SiteGilroy,
		Category:    CategoryHardware,
		CreatedBy:   "techsquad@digitalnest.org",
		Priority:    2,
		Status:      StatusOpen,
	}
	encoded, err := json.Marshal(draft)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields map[string]any
	if err := json.Unmarshal(encoded, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := fields["assignedTo"]; present {
		t.Error("empty assignedTo should be omitted (unassigned)")
	}
	if _, present := fields["id"]; present {
		t.Error("a draft must not carry an id")
	}
}
