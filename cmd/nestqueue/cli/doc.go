// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command framework for the nestqueue binary:
// a pflag-based command tree with structured help, typo suggestions,
// categorized errors, and the shared session configuration that locates
// the ticket service.
package cli
