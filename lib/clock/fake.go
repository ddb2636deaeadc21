// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"time"
)

// Fake is a Clock whose time only moves when a test calls Advance.
// Timers created with After fire synchronously during the Advance call
// that reaches their deadline. Safe for concurrent use.
type Fake struct {
	mutex   sync.Mutex
	now     time.Time
	waiters []fakeWaiter
}

type fakeWaiter struct {
	deadline time.Time
	channel  chan time.Time
}

// NewFake returns a Fake clock starting at the given time.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start}
}

// Now returns the fake current time.
func (fake *Fake) Now() time.Time {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	return fake.now
}

// After returns a channel that receives once Advance moves the clock
// past the deadline. A non-positive duration delivers immediately.
func (fake *Fake) After(d time.Duration) <-chan time.Time {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()

	channel := make(chan time.Time, 1)
	if d <= 0 {
		channel <- fake.now
		return channel
	}
	fake.waiters = append(fake.waiters, fakeWaiter{
		deadline: fake.now.Add(d),
		channel:  channel,
	})
	return channel
}

// Advance moves the clock forward and fires every timer whose deadline
// has been reached.
func (fake *Fake) Advance(d time.Duration) {
	fake.mutex.Lock()
	fake.now = fake.now.Add(d)
	var remaining []fakeWaiter
	var due []fakeWaiter
	for _, waiter := range fake.waiters {
		if !waiter.deadline.After(fake.now) {
			due = append(due, waiter)
		} else {
			remaining = append(remaining, waiter)
		}
	}
	fake.waiters = remaining
	now := fake.now
	fake.mutex.Unlock()

	for _, waiter := range due {
		waiter.channel <- now
	}
}
