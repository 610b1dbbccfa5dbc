// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package feed

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// DefaultPageSize is the number of items revealed per load.
const DefaultPageSize = 8

// State is the controller's position in its load cycle.
type State int

const (
	Idle State = iota
	Loading
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrBusy is returned by LoadMore when a load is already in flight.
var ErrBusy = errors.New("feed: load already in flight")

// ErrExhausted is returned by LoadMore once every item has been revealed.
var ErrExhausted = errors.New("feed: no more items")

// Step is the outcome of loading one page.
type Step[T any] struct {
	Items   []T
	Total   int
	Next    int // offset of the following page
	HasMore bool
}

// LoadPage fetches the page at offset and works out where the next one
// starts. A short or empty page before Total means the source shrank and
// ends the feed.
func LoadPage[T any](ctx context.Context, f Fetcher[T], offset, pageSize int) (Step[T], error) {
	page, err := f.Fetch(ctx, offset, pageSize)
	if err != nil {
		return Step[T]{}, err
	}
	next := offset + len(page.Items)
	return Step[T]{
		Items:   page.Items,
		Total:   page.Total,
		Next:    next,
		HasMore: len(page.Items) > 0 && next < page.Total,
	}, nil
}

// Controller reveals a growing, order-preserving prefix of a source list,
// one fixed-size page per LoadMore call.
type Controller[T any] struct {
	fetcher  Fetcher[T]
	pageSize int

	mu      sync.Mutex
	state   State
	visible []T
	hasMore bool
}

// NewController returns an idle controller. pageSize <= 0 selects
// DefaultPageSize.
func NewController[T any](f Fetcher[T], pageSize int) *Controller[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller[T]{fetcher: f, pageSize: pageSize, hasMore: true}
}

// LoadMore fetches and appends the next page. It is the handler for the
// "last item became visible" signal: a call while a load is in flight
// returns ErrBusy and a call after the source is drained returns
// ErrExhausted, both without side effects. A fetch error returns the
// controller to Idle so the next signal retries.
func (c *Controller[T]) LoadMore(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	switch c.state {
	case Loading:
		c.mu.Unlock()
		return nil, ErrBusy
	case Exhausted:
		c.mu.Unlock()
		return nil, ErrExhausted
	}
	c.state = Loading
	offset := len(c.visible)
	c.mu.Unlock()

	step, err := LoadPage(ctx, c.fetcher, offset, c.pageSize)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = Idle
		return nil, err
	}

	c.visible = append(c.visible, step.Items...)
	c.hasMore = step.HasMore
	if c.hasMore {
		c.state = Idle
	} else {
		c.state = Exhausted
	}
	return step.Items, nil
}

// Visible returns a copy of the revealed items.
func (c *Controller[T]) Visible() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]T(nil), c.visible...)
}

// HasMore reports whether another load can reveal items.
func (c *Controller[T]) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasMore
}

// State returns the current state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// PageSize returns the constant page size.
func (c *Controller[T]) PageSize() int {
	return c.pageSize
}
