// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui holds terminal UI primitives shared by NestQueue's
// interactive surfaces: the color theme and overlay compositing
// helpers used to draw modal panels over the ticket table.
package tui
