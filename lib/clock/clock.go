// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock abstracts time for testability. Production code
// injects Real(); tests inject a Fake with deterministic control.
package clock

import "time"

// Clock provides the time operations the client needs. Code that
// would otherwise call time.Now or time.After directly takes a Clock
// so tests can control it.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After returns a channel that receives the current time once
	// duration d has elapsed.
	After(d time.Duration) <-chan time.Time
}

type realClock struct{}

func (realClock) Now() time.Time                         { return time.Now() }
func (realClock) After(d time.Duration) <-chan time.Time { return time.After(d) }

// Real returns a Clock backed by the time package.
func Real() Clock {
	return realClock{}
}
