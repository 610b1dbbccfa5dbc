// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the canonical in-memory catalog collections and keeps
// each one synchronized with a persist.Adapter. Every mutation rewrites the
// whole collection under its storage key.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"emojiverse/internal/persist"
)

// ErrNotFound is returned when a lookup or mutation targets a missing id.
var ErrNotFound = errors.New("store: not found")

// Collection is an ordered, persisted list of entities of one kind.
// All access goes through its mutex, so callers never observe a partially
// applied mutation.
type Collection[T any] struct {
	mu      sync.RWMutex
	items   []T
	adapter persist.Adapter
	key     string
	seed    func() []T
	id      func(*T) string
}

// NewCollection returns a collection that starts with the seed items until
// Load replaces them with persisted data.
func NewCollection[T any](adapter persist.Adapter, key string, seed func() []T, id func(*T) string) *Collection[T] {
	return &Collection[T]{
		items:   seed(),
		adapter: adapter,
		key:     key,
		seed:    seed,
		id:      id,
	}
}

// Load replaces the in-memory items with the persisted collection. A missing
// key, a read error or malformed JSON keeps the seed data; the failure is
// logged and not retried.
func (c *Collection[T]) Load(ctx context.Context) {
	data, err := c.adapter.Load(ctx, c.key)
	if errors.Is(err, persist.ErrNotFound) {
		slog.Debug("collection not persisted yet, using seed", "key", c.key)
		return
	}
	if err != nil {
		slog.Error("collection load failed, using seed", "key", c.key, "error", err)
		return
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Error("collection decode failed, using seed", "key", c.key, "error", err)
		return
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	slog.Debug("collection loaded", "key", c.key, "count", len(items))
}

// Reset restores the seed data and persists it.
func (c *Collection[T]) Reset(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = c.seed()
	c.persistLocked(ctx)
}

// All returns a copy of the items in collection order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

// Len returns the number of items.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Get returns the item with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexLocked(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Has reports whether an item with the given id exists.
func (c *Collection[T]) Has(id string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.indexLocked(id) >= 0
}

// Filter returns the items for which keep returns true.
func (c *Collection[T]) Filter(keep func(*T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for i := range c.items {
		if keep(&c.items[i]) {
			out = append(out, c.items[i])
		}
	}
	return out
}

// Prepend inserts item at the front of the collection and persists.
// prepare runs under the write lock and may adjust the item (e.g. assign a
// free id); it returns an error to abort the insert.
func (c *Collection[T]) Prepend(ctx context.Context, item T, prepare func(item *T, taken func(string) bool) error) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prepare != nil {
		taken := func(id string) bool { return c.indexLocked(id) >= 0 }
		if err := prepare(&item, taken); err != nil {
			var zero T
			return zero, err
		}
	}

	c.items = append([]T{item}, c.items...)
	c.persistLocked(ctx)
	return item, nil
}

// Replace swaps the item that has the same id. It is a no-op returning
// ErrNotFound when no such item exists. check runs under the write lock
// before the swap and may reject it.
func (c *Collection[T]) Replace(ctx context.Context, item T, check func(item *T) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(c.id(&item))
	if i < 0 {
		return ErrNotFound
	}
	if check != nil {
		if err := check(&item); err != nil {
			return err
		}
	}
	c.items[i] = item
	c.persistLocked(ctx)
	return nil
}

// Modify applies fn to the item with the given id in place and persists.
func (c *Collection[T]) Modify(ctx context.Context, id string, fn func(item *T)) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		var zero T
		return zero, ErrNotFound
	}
	fn(&c.items[i])
	c.persistLocked(ctx)
	return c.items[i], nil
}

// Remove deletes the item with the given id. Removing an unknown id leaves
// the collection and the persisted document unchanged.
func (c *Collection[T]) Remove(ctx context.Context, id string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	removed := c.items[i]
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	c.persistLocked(ctx)
	return removed, true
}

// takenBy reports whether id belongs to an item other than self.
func (c *Collection[T]) takenBy(id, self string, match func(*T) string) bool {
	for i := range c.items {
		if c.id(&c.items[i]) != self && match(&c.items[i]) == id {
			return true
		}
	}
	return false
}

func (c *Collection[T]) indexLocked(id string) int {
	for i := range c.items {
		if c.id(&c.items[i]) == id {
			return i
		}
	}
	return -1
}

// persistLocked serializes the full collection. Failures are logged; the
// in-memory state stays authoritative.
func (c *Collection[T]) persistLocked(ctx context.Context) {
	data, err := json.Marshal(c.items)
	if err != nil {
		slog.Error("collection encode failed", "key", c.key, "error", err)
		return
	}
	if err := c.adapter.Save(ctx, c.key, data); err != nil {
		slog.Error("collection save failed", "key", c.key, "error", err)
	}
}

// Document is a single persisted record such as the footer or the site
// settings.
type Document[T any] struct {
	mu       sync.RWMutex
	value    T
	adapter  persist.Adapter
	key      string
	defaults func() T
}

// NewDocument returns a document holding the defaults until Load runs.
func NewDocument[T any](adapter persist.Adapter, key string, defaults func() T) *Document[T] {
	return &Document[T]{
		value:    defaults(),
		adapter:  adapter,
		key:      key,
		defaults: defaults,
	}
}

// Load overrides the defaults with the persisted record, keeping the
// defaults on any failure.
func (d *Document[T]) Load(ctx context.Context) {
	data, err := d.adapter.Load(ctx, d.key)
	if errors.Is(err, persist.ErrNotFound) {
		return
	}
	if err != nil {
		slog.Error("document load failed, using defaults", "key", d.key, "error", err)
		return
	}

	// Decode over the defaults so fields added later keep a sane value.
	v := d.defaults()
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Error("document decode failed, using defaults", "key", d.key, "error", err)
		return
	}
	d.mu.Lock()
	d.value = v
	d.mu.Unlock()
}

// Get returns the current record.
func (d *Document[T]) Get() T {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.value
}

// Save replaces and persists the record.
func (d *Document[T]) Save(ctx context.Context, v T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.value = v
	d.persistLocked(ctx)
}

// Reset restores and persists the defaults.
func (d *Document[T]) Reset(ctx context.Context) T {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.value = d.defaults()
	d.persistLocked(ctx)
	return d.value
}

func (d *Document[T]) persistLocked(ctx context.Context) {
	data, err := json.Marshal(d.value)
	if err != nil {
		slog.Error("document encode failed", "key", d.key, "error", err)
		return
	}
	if err := d.adapter.Save(ctx, d.key, data); err != nil {
		slog.Error("document save failed", "key", d.key, "error", err)
	}
}
