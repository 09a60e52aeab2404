// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package rate

import (
	"context"
	"sync"
	"time"
)

type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// LimiterInterface admits or rejects a request for a client key. Backends
// own their synchronization; callers never share mutable state.
type LimiterInterface interface {
	Allow(ctx context.Context, key string) (Result, error)
}

var _ LimiterInterface = (*MemoryLimiter)(nil)

// MemoryLimiter keeps a per-key list of request timestamps and admits a
// request iff fewer than max remain within the window after purging stale
// entries. State is process-local and resets on restart; use the Redis
// limiter when running multiple instances.
type MemoryLimiter struct {
	max    int
	window time.Duration

	mu   sync.Mutex
	hits map[string][]time.Time

	now func() time.Time
}

func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		max:    max,
		window: window,
		hits:   make(map[string][]time.Time),
		now:    time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.hits[key][:0]
	for _, ts := range l.hits[key] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.max {
		l.hits[key] = kept
		return Result{
			Allowed:    false,
			Remaining:  0,
			RetryAfter: kept[0].Add(l.window).Sub(now),
		}, nil
	}

	l.hits[key] = append(kept, now)
	return Result{
		Allowed:   true,
		Remaining: l.max - len(kept) - 1,
	}, nil
}
