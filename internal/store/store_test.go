// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// store_test.go provides shared helpers for the store tests. All tests run
// against the in-memory adapter; failingAdapter simulates a broken backend.
package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"emojiverse/internal/persist"
)

// countingAdapter wraps persist.Memory and counts saves per key.
type countingAdapter struct {
	*persist.Memory
	mu    sync.Mutex
	saves map[string]int
}

func newCountingAdapter() *countingAdapter {
	return &countingAdapter{Memory: persist.NewMemory(), saves: make(map[string]int)}
}

func (a *countingAdapter) Save(ctx context.Context, key string, data []byte) error {
	a.mu.Lock()
	a.saves[key]++
	a.mu.Unlock()
	return a.Memory.Save(ctx, key, data)
}

func (a *countingAdapter) saveCount(key string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.saves[key]
}

// failingAdapter fails every operation.
type failingAdapter struct{}

var errBackend = errors.New("backend unavailable")

func (failingAdapter) Load(context.Context, string) ([]byte, error) { return nil, errBackend }
func (failingAdapter) Save(context.Context, string, []byte) error   { return errBackend }

// fixedNow pins the clock of a store for deterministic timestamps.
var fixedNow = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

func newTestEmojiStore(t *testing.T) (*EmojiStore, *countingAdapter) {
	t.Helper()
	a := newCountingAdapter()
	s := NewEmojiStore(a)
	s.now = func() time.Time { return fixedNow }
	s.Load(context.Background())
	return s, a
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, id(it))
	}
	return out
}
