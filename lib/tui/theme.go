// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/digitalnest/nestqueue/lib/ticket"
)

// Theme defines the color palette for NestQueue's terminal UIs. All
// colors use lipgloss ANSI 256-color codes for broad terminal
// compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Status colors, one per recognized status.
	StatusOpen     lipgloss.Color
	StatusActive   lipgloss.Color
	StatusClosed   lipgloss.Color
	StatusRejected lipgloss.Color

	// Urgency colors for the High/Medium/Low priority buckets.
	UrgencyHigh   lipgloss.Color
	UrgencyMedium lipgloss.Color
	UrgencyLow    lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color
	ErrorText        lipgloss.Color

	// Overlay panels.
	OverlayBackground lipgloss.Color
}

// StatusColor returns the color for a status value. Unrecognized
// statuses (rendered as "Unknown") get FaintText.
func (theme Theme) StatusColor(status ticket.Status) lipgloss.Color {
	switch status {
	case ticket.StatusOpen:
		return theme.StatusOpen
	case ticket.StatusActive:
		return theme.StatusActive
	case ticket.StatusClosed:
		return theme.StatusClosed
	case ticket.StatusRejected:
		return theme.StatusRejected
	default:
		return theme.FaintText
	}
}

// PriorityColor returns the color for a priority's urgency bucket.
// Out-of-range priorities get FaintText.
func (theme Theme) PriorityColor(priority ticket.Priority) lipgloss.Color {
	switch priority.Label() {
	case "High":
		return theme.UrgencyHigh
	case "Medium":
		return theme.UrgencyMedium
	case "Low":
		return theme.UrgencyLow
	default:
		return theme.FaintText
	}
}

// DarkTheme is the palette for dark-background terminals, the common
// case for development environments.
var DarkTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusOpen:     lipgloss.Color("114"), // green
	StatusActive:   lipgloss.Color("75"),  // sky blue
	StatusClosed:   lipgloss.Color("214"), // amber
	StatusRejected: lipgloss.Color("204"), // rose

	UrgencyHigh:   lipgloss.Color("196"),
	UrgencyMedium: lipgloss.Color("220"),
	UrgencyLow:    lipgloss.Color("114"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),
	ErrorText:        lipgloss.Color("203"),

	OverlayBackground: lipgloss.Color("235"),
}

// LightTheme is the palette for light-background terminals.
var LightTheme = Theme{
	NormalText: lipgloss.Color("235"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("253"),
	SelectedForeground: lipgloss.Color("232"),

	StatusOpen:     lipgloss.Color("28"),
	StatusActive:   lipgloss.Color("26"),
	StatusClosed:   lipgloss.Color("130"),
	StatusRejected: lipgloss.Color("125"),

	UrgencyHigh:   lipgloss.Color("124"),
	UrgencyMedium: lipgloss.Color("130"),
	UrgencyLow:    lipgloss.Color("28"),

	HeaderForeground: lipgloss.Color("232"),
	BorderColor:      lipgloss.Color("250"),
	HelpText:         lipgloss.Color("245"),
	ErrorText:        lipgloss.Color("160"),

	OverlayBackground: lipgloss.Color("254"),
}

// DetectTheme picks the dark or light palette based on the terminal's
// reported background color.
func DetectTheme() Theme {
	if termenv.HasDarkBackground() {
		return DarkTheme
	}
	return LightTheme
}
