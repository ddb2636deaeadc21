// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package ticket

import (
	"slices"
	"time"
)

// Site is a Digital NEST center a ticket is filed against.
type Site string

// The recognized centers, in display order.
const (
	SiteSalinas     Site = "Salinas"
	SiteWatsonville Site = "Watsonville"
	SiteHQ          Site = "HQ"
	SiteGilroy      Site = "Gilroy"
	SiteModesto     Site = "Modesto"
	SiteStockton    Site = "Stockton"
)

// Sites lists every recognized center in display/selection order.
var Sites = []Site{
	SiteSalinas,
	SiteWatsonville,
	SiteHQ,
	SiteGilroy,
	SiteModesto,
	SiteStockton,
}

// Valid reports whether the site is one of the recognized centers.
func (site Site) Valid() bool {
	return slices.Contains(Sites, site)
}

// Category classifies what kind of help a ticket asks for.
type Category string

// The recognized categories, in display order.
const (
	CategorySoftware Category = "Software"
	CategoryHardware Category = "Hardware"
	CategoryNetwork  Category = "Network"
)

// Categories lists every recognized category in display/selection order.
var Categories = []Category{
	CategorySoftware,
	CategoryHardware,
	CategoryNetwork,
}

// Valid reports whether the category is recognized.
func (category Category) Valid() bool {
	return slices.Contains(Categories, category)
}

// Status is a ticket's lifecycle state. The client sets a status freely
// at creation and renders it read-only afterwards; it enforces no
// transition graph.
type Status string

// The recognized statuses.
const (
	StatusOpen     Status = "Open"
	StatusActive   Status = "Active"
	StatusClosed   Status = "Closed"
	StatusRejected Status = "Rejected"
)

// Statuses lists every recognized status in display/selection order.
var Statuses = []Status{
	StatusOpen,
	StatusActive,
	StatusClosed,
	StatusRejected,
}

// Valid reports whether the status is recognized.
func (status Status) Valid() bool {
	return slices.Contains(Statuses, status)
}

// Label returns the display string for the status. Unrecognized values
// from the remote side render as "Unknown" rather than leaking raw
// wire data into the UI.
func (status Status) Label() string {
	if status.Valid() {
		return string(status)
	}
	return "Unknown"
}

// Priority is a ticket's urgency on an inverted 1-5 scale: 1 is the
// most urgent, 5 the least.
type Priority int

// PriorityMin and PriorityMax bound the legal priority range.
const (
	PriorityMin Priority = 1
	PriorityMax Priority = 5
)

// Priorities lists the legal priorities in selection order. The create
// form presents the least urgent value first, matching the form's
// default of 5.
var Priorities = []Priority{5, 4, 3, 2, 1}

// Valid reports whether the priority is within the legal 1-5 range.
func (priority Priority) Valid() bool {
	return priority >= PriorityMin && priority <= PriorityMax
}

// Label maps a priority number to the coarse urgency bucket shown in
// the detail view: 1 is High, 2 and 4 are Medium, 3 and 5 are Low.
// Out-of-range values return "Unknown".
func (priority Priority) Label() string {
	switch priority {
	case 1:
		return "High"
	case 2, 4:
		return "Medium"
	case 3, 5:
		return "Low"
	default:
		return "Unknown"
	}
}

// Ticket is a helpdesk support request. The identity is ID, an opaque
// string assigned by the NestQueue service; the client never fabricates
// one. Tickets are read-only from the client's perspective once
// created.
type Ticket struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Site        Site      `json:"site"`
	Category    Category  `json:"category"`
	AssignedTo  string    `json:"assignedTo,omitempty"` // Empty means unassigned.
	CreatedBy   string    `json:"createdBy"`
	Priority    Priority  `json:"priority"`
	Status      Status    `json:"status"`
	CreatedOn   time.Time `json:"createdOn"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Draft is the partially-populated ticket sent to the service on
// creation. The service assigns ID and both timestamps and returns the
// fully-formed Ticket.
type Draft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Site        Site     `json:"site"`
	Category    Category `json:"category"`
	AssignedTo  string   `json:"assignedTo,omitempty"`
	CreatedBy   string   `json:"createdBy"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
}

// SortByPriority stable-sorts tickets by priority ascending, so the
// most urgent (priority 1) come first. Ties keep the most recently
// updated ticket first.
func SortByPriority(tickets []Ticket) {
	slices.SortStableFunc(tickets, func(a, b Ticket) int {
		if a.Priority != b.Priority {
			return int(a.Priority) - int(b.Priority)
		}
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
}
