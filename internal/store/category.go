// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"

	"emojiverse/internal/models"
	"emojiverse/internal/persist"
	"emojiverse/internal/slug"
)

// ErrReservedID is returned when a category would take the "all" sentinel.
var ErrReservedID = errors.New("store: identifier is reserved")

// CategoryStore manages catalog categories.
type CategoryStore struct {
	col *Collection[models.Category]
}

// NewCategoryStore returns a store seeded with the built-in categories.
func NewCategoryStore(adapter persist.Adapter) *CategoryStore {
	return &CategoryStore{
		col: NewCollection(adapter, persist.KeyCategories, SeedCategories, func(c *models.Category) string { return c.ID }),
	}
}

// Load reads the persisted categories, falling back to the seed.
func (s *CategoryStore) Load(ctx context.Context) {
	s.col.Load(ctx)
}

// List returns all categories in display order.
func (s *CategoryStore) List() []models.Category {
	return s.col.All()
}

// Get returns the category with the given id.
func (s *CategoryStore) Get(id string) (models.Category, bool) {
	return s.col.Get(id)
}

// Exists reports whether id names a category or the "all" sentinel.
func (s *CategoryStore) Exists(id string) bool {
	return models.IsAll(id) || s.col.Has(id)
}

// Add derives the id from the (untranslated) name when it is empty and
// prepends the category.
func (s *CategoryStore) Add(ctx context.Context, c models.Category) (models.Category, error) {
	base := c.ID
	if base == "" {
		base = slug.Generate(c.Name.Value)
	} else {
		base = slug.Generate(base)
	}
	if base == "" {
		return models.Category{}, ErrEmptyID
	}
	if base == models.AllCategories {
		return models.Category{}, ErrReservedID
	}
	c.PostCount = 0
	return s.col.Prepend(ctx, c, func(item *models.Category, taken func(string) bool) error {
		item.ID = slug.Unique(base, taken)
		return nil
	})
}

// Update replaces the category with the same id.
func (s *CategoryStore) Update(ctx context.Context, c models.Category) error {
	c.PostCount = 0
	return s.col.Replace(ctx, c, nil)
}

// Delete removes the category. Entries that referenced it keep the id.
func (s *CategoryStore) Delete(ctx context.Context, id string) bool {
	_, ok := s.col.Remove(ctx, id)
	return ok
}
