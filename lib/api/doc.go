// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the HTTP client for the NestQueue ticket service.
//
// The client covers the two operations the service exposes to this
// tool: reading the full ticket collection (GET /tickets) and creating
// a ticket (POST /tickets). Failures surface as typed errors,
// [FetchError] for reads and [CreateError] for writes, so callers can
// branch on the operation that failed without string matching.
//
// The client performs no caching and no retries; both are the
// responsibility of the ticketstore layer.
package api
