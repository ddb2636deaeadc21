// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticket defines the NestQueue ticket domain model: the
// Ticket entity, the Draft used for creation, and the closed
// vocabularies for sites, categories, priorities, and statuses.
//
// The enumeration slices (Sites, Categories, Priorities, Statuses) are
// ordered: their order is the display and selection order in choice
// controls. Treat them as read-only.
//
// Priority is inverted: a lower number means higher urgency, with 1
// the most urgent and 5 the least. Sorting a collection by priority
// ascending surfaces the most urgent tickets first.
package ticket
