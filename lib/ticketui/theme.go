// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package ticketui

import "github.com/digitalnest/nestqueue/lib/tui"

// Re-export theme types from the shared TUI library so code in this
// package can refer to them unqualified.

// Theme defines the color palette for the viewer.
type Theme = tui.Theme

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = tui.DarkTheme
