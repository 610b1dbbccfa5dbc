// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package feed implements incremental ("infinite scroll") loading over a
// result list. The Controller state machine is the same whether pages come
// from an in-memory slice behind a simulated delay or from a real backend.
package feed

import (
	"context"
	"time"
)

// Page is one slice of a source list.
type Page[T any] struct {
	Items []T
	Total int
}

// Fetcher returns up to limit items starting at offset.
type Fetcher[T any] interface {
	Fetch(ctx context.Context, offset, limit int) (Page[T], error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc[T any] func(ctx context.Context, offset, limit int) (Page[T], error)

// Fetch calls f.
func (f FetcherFunc[T]) Fetch(ctx context.Context, offset, limit int) (Page[T], error) {
	return f(ctx, offset, limit)
}

// SliceFetcher serves pages of an already computed (possibly shuffled)
// list, optionally after a fixed delay standing in for network latency.
type SliceFetcher[T any] struct {
	items []T
	delay time.Duration
}

// NewSliceFetcher returns a fetcher over items. The slice is not copied.
func NewSliceFetcher[T any](items []T, delay time.Duration) *SliceFetcher[T] {
	return &SliceFetcher[T]{items: items, delay: delay}
}

// Fetch waits for the configured delay, or until ctx is done, then returns
// the requested window.
func (f *SliceFetcher[T]) Fetch(ctx context.Context, offset, limit int) (Page[T], error) {
	if f.delay > 0 {
		timer := time.NewTimer(f.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Page[T]{}, ctx.Err()
		case <-timer.C:
		}
	}
	return Window(f.items, offset, limit), nil
}

// Window returns items[offset:offset+limit] clamped to the slice bounds.
func Window[T any](items []T, offset, limit int) Page[T] {
	total := len(items)
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	end := total
	if limit >= 0 && offset+limit < total {
		end = offset + limit
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return Page[T]{Items: out, Total: total}
}
