// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/digitalnest/nestqueue/lib/ticket"
	"github.com/digitalnest/nestqueue/lib/tui"
)

// chromeLines is the number of non-row lines in the list view: the
// header, the column header, and the status bar.
const chromeLines = 3

// Fixed column widths for the list table. The title column fills the
// remaining space.
const (
	columnWidthPriority = 10
	columnWidthCategory = 10
	columnWidthAssignee = 18
	columnWidthStatus   = 10
	columnWidthModified = 13
)

// listDateLayout is how the Last Modified column formats timestamps.
const listDateLayout = "Jan 2, 2006"

// assigneeLabel renders an empty assignment as "Unassigned".
func assigneeLabel(assignedTo string) string {
	if assignedTo == "" {
		return "Unassigned"
	}
	return assignedTo
}

// titleColumnWidth returns the width left for the title column after
// the fixed columns, never below a readable floor.
func titleColumnWidth(totalWidth int) int {
	fixed := columnWidthPriority + columnWidthCategory +
		columnWidthAssignee + columnWidthStatus + columnWidthModified
	width := totalWidth - fixed
	if width < 12 {
		width = 12
	}
	return width
}

// cell pads or truncates text to exactly width columns plus a trailing
// space.
func cell(text string, width int) string {
	text = tui.TruncateLabel(text, width-1)
	return fmt.Sprintf("%-*s", width, text)
}

// renderList draws the header, the ticket table, and the status bar.
func (model Model) renderList() string {
	headerStyle := lipgloss.NewStyle().
		Foreground(model.theme.HeaderForeground).
		Bold(true)
	columnStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Underline(true)

	titleWidth := titleColumnWidth(model.width)

	var view strings.Builder
	view.WriteString(headerStyle.Render(fmt.Sprintf(" NestQueue · %d tickets", len(model.tickets))))
	view.WriteString("\n")

	view.WriteString(columnStyle.Render(
		cell("Priority", columnWidthPriority) +
			cell("Category", columnWidthCategory) +
			cell("Title", titleWidth) +
			cell("Assigned To", columnWidthAssignee) +
			cell("Status", columnWidthStatus) +
			cell("Last Modified", columnWidthModified),
	))
	view.WriteString("\n")

	rows := model.visibleRows()
	for rowIndex := 0; rowIndex < rows; rowIndex++ {
		index := model.scrollOffset + rowIndex
		if index < len(model.tickets) {
			view.WriteString(model.renderRow(model.tickets[index], index == model.cursor))
		}
		view.WriteString("\n")
	}

	view.WriteString(model.renderStatusBar())
	return view.String()
}

// renderRow draws one ticket as a table row. The selected row uses a
// uniform highlight; other rows color the priority and status cells.
func (model Model) renderRow(item ticket.Ticket, selected bool) string {
	titleWidth := titleColumnWidth(model.width)
	priorityText := fmt.Sprintf("%d · %s", int(item.Priority), item.Priority.Label())

	if selected {
		row := cell(priorityText, columnWidthPriority) +
			cell(string(item.Category), columnWidthCategory) +
			cell(item.Title, titleWidth) +
			cell(assigneeLabel(item.AssignedTo), columnWidthAssignee) +
			cell(item.Status.Label(), columnWidthStatus) +
			cell(item.UpdatedAt.Local().Format(listDateLayout), columnWidthModified)
		return lipgloss.NewStyle().
			Background(model.theme.SelectedBackground).
			Foreground(model.theme.SelectedForeground).
			Render(row)
	}

	normal := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	priorityStyle := lipgloss.NewStyle().Foreground(model.theme.PriorityColor(item.Priority))
	statusStyle := lipgloss.NewStyle().Foreground(model.theme.StatusColor(item.Status))

	assignee := assigneeLabel(item.AssignedTo)
	assigneeStyle := normal
	if item.AssignedTo == "" {
		assigneeStyle = faint
	}

	return priorityStyle.Render(cell(priorityText, columnWidthPriority)) +
		normal.Render(cell(string(item.Category), columnWidthCategory)) +
		normal.Render(cell(item.Title, titleWidth)) +
		assigneeStyle.Render(cell(assignee, columnWidthAssignee)) +
		statusStyle.Render(cell(item.Status.Label(), columnWidthStatus)) +
		faint.Render(cell(item.UpdatedAt.Local().Format(listDateLayout), columnWidthModified))
}

// renderStatusBar draws the bottom line: load errors take precedence,
// then transient notices, then the loading indicator, then key help.
func (model Model) renderStatusBar() string {
	errorStyle := lipgloss.NewStyle().Foreground(model.theme.ErrorText)
	helpStyle := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	noticeStyle := lipgloss.NewStyle().Foreground(model.theme.StatusOpen)

	switch {
	case model.loadErr != nil:
		message := "Failed to fetch tickets: " + model.loadErr.Error() + " (r to retry)"
		return errorStyle.Render(tui.TruncateLabel(" "+message, model.width))
	case model.notice != "":
		return noticeStyle.Render(tui.TruncateLabel(" "+model.notice, model.width))
	case model.loading:
		return helpStyle.Render(" Refreshing...")
	default:
		help := " j/k move · Enter view · c create · r refresh · q quit"
		return helpStyle.Render(tui.TruncateLabel(help, model.width))
	}
}

// detailDateLayout is how the detail panel formats timestamps.
const detailDateLayout = "Jan 2, 2006 3:04 PM"

// detailInnerWidth is the usable width inside the detail panel.
const detailInnerWidth = 52

// renderDetail draws the read-only panel for one ticket.
func (model Model) renderDetail(item ticket.Ticket) string {
	labelStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	valueStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	titleStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)
	statusStyle := lipgloss.NewStyle().Foreground(model.theme.StatusColor(item.Status))
	priorityStyle := lipgloss.NewStyle().Foreground(model.theme.PriorityColor(item.Priority))

	field := func(label, value string) string {
		return labelStyle.Render(fmt.Sprintf("%-12s", label)) + valueStyle.Render(value)
	}

	var body strings.Builder
	fmt.Fprintf(&body, "%s\n", titleStyle.Render(tui.TruncateLabel(item.Title, detailInnerWidth)))
	fmt.Fprintf(&body, "%s\n\n", labelStyle.Render("#"+item.ID))

	fmt.Fprintf(&body, "%s%s    %s%s\n",
		labelStyle.Render(fmt.Sprintf("%-12s", "Status")),
		statusStyle.Render(item.Status.Label()),
		labelStyle.Render("Priority    "),
		priorityStyle.Render(fmt.Sprintf("%d · %s", int(item.Priority), item.Priority.Label())),
	)
	fmt.Fprintf(&body, "%s\n", field("Site", string(item.Site)))
	fmt.Fprintf(&body, "%s\n", field("Category", string(item.Category)))
	fmt.Fprintf(&body, "%s\n", field("Assigned to", assigneeLabel(item.AssignedTo)))
	fmt.Fprintf(&body, "%s\n", field("Created by", item.CreatedBy))
	fmt.Fprintf(&body, "%s\n", field("Created", item.CreatedOn.Local().Format(detailDateLayout)))
	fmt.Fprintf(&body, "%s\n\n", field("Updated", item.UpdatedAt.Local().Format(detailDateLayout)))

	for _, line := range wrapText(item.Description, detailInnerWidth) {
		body.WriteString(valueStyle.Render(line) + "\n")
	}
	body.WriteString("\n" + lipgloss.NewStyle().Foreground(model.theme.HelpText).Render("Esc close"))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor).
		Padding(0, 1).
		Width(detailInnerWidth + 2)
	return panel.Render(body.String())
}

// wrapText breaks text into lines no wider than width, splitting on
// word boundaries where possible.
func wrapText(text string, width int) []string {
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, word := range words[1:] {
			if lipgloss.Width(line)+1+lipgloss.Width(word) > width {
				lines = append(lines, line)
				line = word
				continue
			}
			line += " " + word
		}
		lines = append(lines, line)
	}
	return lines
}
