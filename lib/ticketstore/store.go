// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package ticketstore

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/digitalnest/nestqueue/lib/clock"
	"github.com/digitalnest/nestqueue/lib/ticket"
)

// Client is the slice of the API client the store depends on. The
// *api.Client satisfies it; tests substitute fakes.
type Client interface {
	// Tickets reads the full ticket collection.
	Tickets(ctx context.Context) ([]ticket.Ticket, error)

	// CreateTicket submits a draft and returns the ticket the
	// service assigned, including its ID and timestamps.
	CreateTicket(ctx context.Context, draft ticket.Draft) (ticket.Ticket, error)
}

// Event kinds delivered on the Subscribe channel.
const (
	// EventRefreshed means a fetch completed (successfully or not)
	// and Snapshot reflects its outcome.
	EventRefreshed = "refreshed"

	// EventInvalidated means the cached collection was discarded;
	// the next Load will hit the network.
	EventInvalidated = "invalidated"
)

// Event describes a change to the store's cached state, delivered via
// the [Store.Subscribe] channel for live-updating UIs.
type Event struct {
	Kind string
	// Err carries the fetch failure on a refreshed event; nil on
	// success and on invalidation.
	Err error
}

// Snapshot is the tri-state view the UI renders from: data, error, or
// still loading.
type Snapshot struct {
	// Tickets is the cached collection. Nil unless Loaded is true
	// and the last fetch succeeded.
	Tickets []ticket.Ticket

	// Err is the failure of the last completed fetch, if any. A
	// failed fetch stays failed until Invalidate; the store never
	// retries on its own.
	Err error

	// Loaded is false while no fetch has completed in the current
	// cache lifetime (initial load, or after an invalidation).
	Loaded bool

	// FetchedAt is when the cached result was obtained. Zero until
	// the first fetch completes.
	FetchedAt time.Time
}

// Callbacks receive the outcome of a Create call. Any field may be
// nil. For a single call, OnSuccess or OnError fires first (never
// both) and OnSettled always fires afterwards, exactly once.
type Callbacks struct {
	OnSuccess func(created ticket.Ticket)
	OnError   func(err error)
	OnSettled func()
}

// Store caches the remote ticket collection and coordinates
// invalidation after writes. Safe for concurrent use.
type Store struct {
	client Client
	clock  clock.Clock
	logger *slog.Logger

	mutex       sync.Mutex
	tickets     []ticket.Ticket
	err         error
	loaded      bool
	fetchedAt   time.Time
	inflight    chan struct{} // Non-nil while a fetch is running; closed on completion.
	subscribers []chan Event
}

// New creates a Store over the given client. A nil clock defaults to
// clock.Real(); a nil logger to slog.Default().
func New(client Client, clk clock.Clock, logger *slog.Logger) *Store {
	if clk == nil {
		clk = clock.Real()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client: client,
		clock:  clk,
		logger: logger,
	}
}

// Load returns the ticket collection, fetching it from the service if
// the cache is cold. Concurrent callers share one in-flight request
// and one result. A failed fetch is returned immediately and cached as
// failed; the store performs zero retries (a failed load stays visible
// until Invalidate).
func (store *Store) Load(ctx context.Context) ([]ticket.Ticket, error) {
	for {
		store.mutex.Lock()
		if store.loaded {
			tickets, err := store.tickets, store.err
			store.mutex.Unlock()
			return slices.Clone(tickets), err
		}
		if store.inflight != nil {
			// Another caller is already fetching; wait for its
			// result rather than issuing a duplicate request.
			done := store.inflight
			store.mutex.Unlock()
			select {
			case <-done:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			continue
		}
		done := make(chan struct{})
		store.inflight = done
		store.mutex.Unlock()

		tickets, err := store.client.Tickets(ctx)

		store.mutex.Lock()
		store.tickets = tickets
		store.err = err
		store.loaded = true
		store.fetchedAt = store.clock.Now()
		store.inflight = nil
		subscribers := slices.Clone(store.subscribers)
		store.mutex.Unlock()
		close(done)

		if err != nil {
			store.logger.Warn("ticket collection fetch failed", "error", err)
		}
		dispatch(subscribers, Event{Kind: EventRefreshed, Err: err})
		return slices.Clone(tickets), err
	}
}

// Invalidate discards the cached collection (data or cached failure)
// so the next Load hits the network. This is the single named
// invalidation point: create-success and user-requested refresh both
// route through it.
func (store *Store) Invalidate() {
	store.mutex.Lock()
	store.tickets = nil
	store.err = nil
	store.loaded = false
	subscribers := slices.Clone(store.subscribers)
	store.mutex.Unlock()

	dispatch(subscribers, Event{Kind: EventInvalidated})
}

// Create validates and submits a draft. Validation failures return a
// ticket.ValidationErrors immediately, with no network call and no callbacks
// (nothing was submitted). Otherwise the write runs to completion:
// OnSuccess or OnError fires with the outcome, then OnSettled fires
// exactly once. On success the cached collection is invalidated before
// OnSuccess runs, so any read triggered by the callback sees the new
// ticket.
func (store *Store) Create(ctx context.Context, draft ticket.Draft, callbacks Callbacks) error {
	if errs := draft.Validate(); len(errs) > 0 {
		return errs
	}

	created, err := store.client.CreateTicket(ctx, draft)
	if err != nil {
		store.logger.Warn("ticket creation failed",
			"title", draft.Title,
			"error", err)
		if callbacks.OnError != nil {
			callbacks.OnError(err)
		}
		if callbacks.OnSettled != nil {
			callbacks.OnSettled()
		}
		return err
	}

	store.Invalidate()
	if callbacks.OnSuccess != nil {
		callbacks.OnSuccess(created)
	}
	if callbacks.OnSettled != nil {
		callbacks.OnSettled()
	}
	return nil
}

// Snapshot returns the current cached state without touching the
// network.
func (store *Store) Snapshot() Snapshot {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	return Snapshot{
		Tickets:   slices.Clone(store.tickets),
		Err:       store.err,
		Loaded:    store.loaded,
		FetchedAt: store.fetchedAt,
	}
}

// Subscribe returns a channel that receives an Event whenever the
// cached state changes. Events are dropped, not queued, when the
// subscriber's buffer is full; consumers re-read Snapshot on each
// event, so a dropped event at worst coalesces with the next one.
func (store *Store) Subscribe() <-chan Event {
	store.mutex.Lock()
	defer store.mutex.Unlock()
	channel := make(chan Event, 16)
	store.subscribers = append(store.subscribers, channel)
	return channel
}

func dispatch(subscribers []chan Event, event Event) {
	for _, subscriber := range subscribers {
		select {
		case subscriber <- event:
		default:
		}
	}
}
