// Copyright 2026 The NestQueue Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"testing"
	"time"
)

func TestFakeNowAdvance(t *testing.T) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	fake := NewFake(start)

	if got := fake.Now(); !got.Equal(start) {
		t.Errorf("Now() = %v, want %v", got, start)
	}

	fake.Advance(90 * time.Second)
	if got := fake.Now(); !got.Equal(start.Add(90 * time.Second)) {
		t.Errorf("Now() after Advance = %v", got)
	}
}

func TestFakeAfterFiresOnAdvance(t *testing.T) {
	fake := NewFake(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	timer := fake.After(time.Minute)

	select {
	case <-timer:
		t.Fatal("timer fired before Advance")
	default:
	}

	fake.Advance(30 * time.Second)
	select {
	case <-timer:
		t.Fatal("timer fired before its deadline")
	default:
	}

	fake.Advance(30 * time.Second)
	select {
	case <-timer:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire at its deadline")
	}
}

func TestFakeAfterNonPositive(t *testing.T) {
	fake := NewFake(time.Now())
	select {
	case <-fake.After(0):
	case <-time.After(time.Second):
		t.Fatal("zero-duration timer should deliver immediately")
	}
}
