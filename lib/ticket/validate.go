// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"fmt"
	"strings"
)

// ValidationError reports a single field that fails the pre-submission
// checks. It is a local error: a draft with validation errors never
// reaches the wire.
type ValidationError struct {
	Field   string
	Message string
}

func (err ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", err.Field, err.Message)
}

// ValidationErrors aggregates every failing field from one validation
// pass so the UI can report them inline per field.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	messages := make([]string, len(errs))
	for index, err := range errs {
		messages[index] = err.Error()
	}
	return "invalid draft: " + strings.Join(messages, "; ")
}

// ByField returns the message for the named field, or "" when the
// field passed validation.
func (errs ValidationErrors) ByField(field string) string {
	for _, err := range errs {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}

// Validate checks a draft against the domain invariants before
// submission: title and description must be non-empty (ignoring
// whitespace), and the enumerated fields must hold legal values.
// Returns nil when the draft is submittable.
func (draft Draft) Validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(draft.Title) == "" {
		errs = append(errs, ValidationError{Field: "title", Message: "required"})
	}
	if strings.TrimSpace(draft.Description) == "" {
		errs = append(errs, ValidationError{Field: "description", Message: "required"})
	}
	if !draft.Site.Valid() {
		errs = append(errs, ValidationError{Field: "site", Message: fmt.Sprintf("unknown site %q", string(draft.Site))})
	}
	if !draft.Category.Valid() {
		errs = append(errs, ValidationError{Field: "category", Message: fmt.Sprintf("unknown category %q", string(draft.Category))})
	}
	if !draft.Priority.Valid() {
		errs = append(errs, ValidationError{Field: "priority", Message: fmt.Sprintf("must be %d-%d, got %d", PriorityMin, PriorityMax, int(draft.Priority))})
	}
	if !draft.Status.Valid() {
		errs = append(errs, ValidationError{Field: "status", Message: fmt.Sprintf("unknown status %q", string(draft.Status))})
	}

	return errs
}
