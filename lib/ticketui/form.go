// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/digitalnest/nestqueue/lib/ticket"
	"github.com/digitalnest/nestqueue/lib/tui"
)

// formField identifies the focused control in the create form. The
// order is the Tab traversal order, matching the visual layout.
type formField int

const (
	fieldTitle formField = iota
	fieldStatus
	fieldPriority
	fieldDescription
	fieldAssignedTo
	fieldSite
	fieldCategory
	fieldCount
)

// formInnerWidth is the usable width inside the create-form panel.
const formInnerWidth = 46

// FormModel is the transient editing session for one ticket draft:
// per-field state, validation results, and the submission lifecycle.
// The draft survives a failed submission so the user can retry without
// re-entering anything; it is discarded only on success or dismissal.
type FormModel struct {
	theme     Theme
	createdBy string

	title       textinput.Model
	description textarea.Model
	assignedTo  textinput.Model

	// Indexes into the domain enumeration slices.
	statusIndex   int
	priorityIndex int
	siteIndex     int
	categoryIndex int

	focus formField

	// submitting disables the submit action while a create call is
	// in flight, so repeated keypresses cannot produce a second
	// network write.
	submitting bool

	// fieldErrors holds the latest validation result, rendered
	// inline next to the offending fields.
	fieldErrors ticket.ValidationErrors

	// submitError is the remote failure of the last attempt, shown
	// in the panel footer. The draft stays intact.
	submitError string
}

// NewFormModel creates a form session with the stock defaults: status
// Open, priority 5 (least urgent), site Watsonville, category
// Software, unassigned.
func NewFormModel(theme Theme, createdBy string) FormModel {
	title := textinput.New()
	title.Placeholder = "Enter a title"
	title.Prompt = ""
	title.CharLimit = 120
	title.Width = formInnerWidth - len("Title: ")

	description := textarea.New()
	description.Placeholder = "Ticket description"
	description.SetWidth(formInnerWidth)
	description.SetHeight(3)
	description.ShowLineNumbers = false
	description.CharLimit = 2000

	assignedTo := textinput.New()
	assignedTo.Placeholder = "Unassigned"
	assignedTo.Prompt = ""
	assignedTo.CharLimit = 120
	assignedTo.Width = formInnerWidth - len("Assigned to: ")

	form := FormModel{
		theme:       theme,
		createdBy:   createdBy,
		title:       title,
		description: description,
		assignedTo:  assignedTo,
		statusIndex: enumIndex(ticket.Statuses, ticket.StatusOpen),
		siteIndex:   enumIndex(ticket.Sites, ticket.SiteWatsonville),
		// Priorities[0] is 5, the default; Categories[0] is Software.
	}
	form.title.Focus()
	return form
}

// enumIndex returns the position of value in values, or 0 when absent.
func enumIndex[T comparable](values []T, value T) int {
	for index, candidate := range values {
		if candidate == value {
			return index
		}
	}
	return 0
}

// Draft assembles the current field values into a creation draft.
func (form FormModel) Draft() ticket.Draft {
	return ticket.Draft{
		Title:       strings.TrimSpace(form.title.Value()),
		Description: strings.TrimSpace(form.description.Value()),
		Site:        ticket.Sites[form.siteIndex],
		Category:    ticket.Categories[form.categoryIndex],
		AssignedTo:  strings.TrimSpace(form.assignedTo.Value()),
		CreatedBy:   form.createdBy,
		Priority:    ticket.Priorities[form.priorityIndex],
		Status:      ticket.Statuses[form.statusIndex],
	}
}

// Submitting reports whether a create call is in flight.
func (form FormModel) Submitting() bool {
	return form.submitting
}

// cycleFocus moves focus by delta fields, wrapping, and toggles the
// text components' focus state to match.
func (form FormModel) cycleFocus(delta int) FormModel {
	form.focus = formField((int(form.focus) + delta + int(fieldCount)) % int(fieldCount))

	form.title.Blur()
	form.description.Blur()
	form.assignedTo.Blur()
	switch form.focus {
	case fieldTitle:
		form.title.Focus()
	case fieldDescription:
		form.description.Focus()
	case fieldAssignedTo:
		form.assignedTo.Focus()
	}
	return form
}

// cycleOption moves the focused enumerated field by delta options,
// wrapping. No effect when a text field has focus.
func (form FormModel) cycleOption(delta int) FormModel {
	wrap := func(index, size int) int {
		return (index + delta + size) % size
	}
	switch form.focus {
	case fieldStatus:
		form.statusIndex = wrap(form.statusIndex, len(ticket.Statuses))
	case fieldPriority:
		form.priorityIndex = wrap(form.priorityIndex, len(ticket.Priorities))
	case fieldSite:
		form.siteIndex = wrap(form.siteIndex, len(ticket.Sites))
	case fieldCategory:
		form.categoryIndex = wrap(form.categoryIndex, len(ticket.Categories))
	}
	return form
}

// focusedOnEnum reports whether the focused field is one of the
// enumerated selectors.
func (form FormModel) focusedOnEnum() bool {
	switch form.focus {
	case fieldStatus, fieldPriority, fieldSite, fieldCategory:
		return true
	}
	return false
}

// handleKey routes a keystroke to the focused control. Submission and
// dismissal are handled by the parent model before delegation.
func (form FormModel) handleKey(message tea.KeyMsg) (FormModel, tea.Cmd) {
	switch message.String() {
	case "tab":
		return form.cycleFocus(1), nil
	case "shift+tab":
		return form.cycleFocus(-1), nil
	}

	if form.focusedOnEnum() {
		switch message.String() {
		case "left", "h":
			return form.cycleOption(-1), nil
		case "right", "l", "enter", " ":
			return form.cycleOption(1), nil
		}
		return form, nil
	}

	var cmd tea.Cmd
	switch form.focus {
	case fieldTitle:
		form.title, cmd = form.title.Update(message)
	case fieldDescription:
		form.description, cmd = form.description.Update(message)
	case fieldAssignedTo:
		form.assignedTo, cmd = form.assignedTo.Update(message)
	}
	return form, cmd
}

// View renders the create-form panel.
func (form FormModel) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(form.theme.HeaderForeground).Bold(true)
	faint := lipgloss.NewStyle().Foreground(form.theme.FaintText)
	errorStyle := lipgloss.NewStyle().Foreground(form.theme.ErrorText)

	marker := func(field formField) string {
		if form.focus == field {
			return "› "
		}
		return "  "
	}
	selector := func(field formField, value string) string {
		if form.focus == field {
			return "◂ " + value + " ▸"
		}
		return value
	}
	fieldError := func(field string) string {
		message := form.fieldErrors.ByField(field)
		if message == "" {
			return ""
		}
		return " " + errorStyle.Render(message)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "%s\n\n", labelStyle.Render("Create Ticket"))
	fmt.Fprintf(&body, "%sTitle: %s%s\n", marker(fieldTitle), form.title.View(), fieldError("title"))
	fmt.Fprintf(&body, "%sStatus: %s    %sPriority: %s\n",
		marker(fieldStatus), selector(fieldStatus, string(ticket.Statuses[form.statusIndex])),
		marker(fieldPriority), selector(fieldPriority, fmt.Sprintf("%d", int(ticket.Priorities[form.priorityIndex]))),
	)
	fmt.Fprintf(&body, "%sDescription:%s\n%s\n", marker(fieldDescription), fieldError("description"), form.description.View())
	fmt.Fprintf(&body, "%sAssigned to: %s\n", marker(fieldAssignedTo), form.assignedTo.View())
	fmt.Fprintf(&body, "%sSite: %s    %sCategory: %s\n",
		marker(fieldSite), selector(fieldSite, string(ticket.Sites[form.siteIndex])),
		marker(fieldCategory), selector(fieldCategory, string(ticket.Categories[form.categoryIndex])),
	)

	body.WriteString("\n")
	if form.submitError != "" {
		body.WriteString(errorStyle.Render(tui.TruncateLabel(form.submitError, formInnerWidth)) + "\n")
	}
	if form.submitting {
		body.WriteString(faint.Render("Creating..."))
	} else {
		body.WriteString(faint.Render("Tab next · ←/→ change · C-s create · Esc cancel"))
	}

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(form.theme.BorderColor).
		Padding(0, 1).
		Width(formInnerWidth + 2)
	return panel.Render(body.String())
}
