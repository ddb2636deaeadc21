// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import "testing"

// validDraft returns a draft that passes every check. Tests mutate one
// field at a time.
func validDraft() Draft {
	return Draft{
		Title:       "Projector flickering",
		Description: "Room B projector flickers after 10 minutes.",
		Site:        SiteWatsonville,
		Category:    CategorySoftware,
		CreatedBy:   "techsquad@digitalnest.org",
		Priority:    5,
		Status:      StatusOpen,
	}
}

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	if errs := validDraft().Validate(); len(errs) != 0 {
		t.Fatalf("expected no validation errors, got %v", errs)
	}
}

func TestValidateRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
		field  string
	}{
		{"empty title", func(d *Draft) { d.Title = "" }, "title"},
		{"whitespace title", func(d *Draft) { d.Title = "   " }, "title"},
		{"empty description", func(d *Draft) { d.Description = "" }, "description"},
		{"whitespace description", func(d *Draft) { d.Description = "\n\t" }, "description"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			draft := validDraft()
			test.mutate(&draft)
			errs := draft.Validate()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %v", errs)
			}
			if errs[0].Field != test.field || errs[0].Message != "required" {
				t.Errorf("got %+v, want required %s", errs[0], test.field)
			}
		})
	}
}

func TestValidateEnumMembership(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
		field  string
	}{
		{"unknown site", func(d *Draft) { d.Site = "Fresno" }, "site"},
		{"unknown category", func(d *Draft) { d.Category = "Plumbing" }, "category"},
		{"priority zero", func(d *Draft) { d.Priority = 0 }, "priority"},
		{"priority six", func(d *Draft) { d.Priority = 6 }, "priority"},
		{"unknown status", func(d *Draft) { d.Status = "Pending" }, "status"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			draft := validDraft()
			test.mutate(&draft)
			errs := draft.Validate()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %v", errs)
			}
			if errs[0].Field != test.field {
				t.Errorf("error field = %q, want %q", errs[0].Field, test.field)
			}
		})
	}
}

func TestValidateAggregatesAllFailures(t *testing.T) {
	draft := Draft{Priority: 9} // Everything wrong at once.
	errs := draft.Validate()
	if len(errs) != 6 {
		t.Fatalf("expected 6 errors, got %d: %v", len(errs), errs)
	}
	if errs.ByField("title") != "required" {
		t.Errorf("ByField(title) = %q", errs.ByField("title"))
	}
	if errs.ByField("nonexistent") != "" {
		t.Error("ByField for a passing field should be empty")
	}
}
