// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

// Package ticketstore layers a cache with explicit invalidation over
// the NestQueue API client.
//
// A Store holds one cached copy of the ticket collection. Reads go
// through [Store.Load]: concurrent callers during the same cache
// lifetime share a single in-flight request and a single result, and a
// failed fetch is cached as failed, never retried, until someone
// calls [Store.Invalidate]. Writes go through [Store.Create], which
// invalidates the cached collection on success so the next read sees
// the new ticket without a manual reload.
//
// Stores are constructed explicitly and passed to the components that
// need them; there is no package-level instance.
package ticketstore
