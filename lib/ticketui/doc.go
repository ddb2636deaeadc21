// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticketui implements the interactive NestQueue ticket
// viewer: a bubbletea model that renders the ticket table and drives
// the detail and create-form overlays.
//
// The model owns the interaction state as a single tagged value
// (no overlay, the create form, or the detail panel for one selected
// ticket), so at most one overlay can ever be open. Ticket data comes
// from a ticketstore.Store; network completions and cache events enter
// the model as bubbletea messages.
package ticketui
