// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"time"

	"emojiverse/internal/models"
	"emojiverse/internal/persist"
	"emojiverse/internal/slug"
)

// ErrEmptyID is returned when an identifier cannot be derived from the
// draft's title.
var ErrEmptyID = errors.New("store: title does not produce an identifier")

// Repository is the CRUD surface of the catalog collection.
type Repository interface {
	Get(id string) (models.Emoji, bool)
	Add(ctx context.Context, draft models.Emoji) (models.Emoji, error)
	Update(ctx context.Context, e models.Emoji) error
	Delete(ctx context.Context, id string) bool
}

// EmojiStore manages catalog entries (emoji posts and file posts).
type EmojiStore struct {
	col *Collection[models.Emoji]
	now func() time.Time
}

var _ Repository = (*EmojiStore)(nil)

// NewEmojiStore returns a store seeded with the built-in catalog.
func NewEmojiStore(adapter persist.Adapter) *EmojiStore {
	return &EmojiStore{
		col: NewCollection(adapter, persist.KeyEmojis, SeedEmojis, func(e *models.Emoji) string { return e.ID }),
		now: time.Now,
	}
}

// Load reads the persisted catalog, falling back to the seed.
func (s *EmojiStore) Load(ctx context.Context) {
	s.col.Load(ctx)
}

// List returns all entries, newest first.
func (s *EmojiStore) List() []models.Emoji {
	return cloneAll(s.col.All())
}

// Get returns the entry with the given id.
func (s *EmojiStore) Get(id string) (models.Emoji, bool) {
	e, ok := s.col.Get(id)
	if !ok {
		return models.Emoji{}, false
	}
	return e.Clone(), true
}

// GetByCategory returns the entries of one category, or every entry for
// the "all" sentinel.
func (s *EmojiStore) GetByCategory(categoryID string) []models.Emoji {
	if models.IsAll(categoryID) {
		return s.List()
	}
	return cloneAll(s.col.Filter(func(e *models.Emoji) bool {
		return e.Category == categoryID
	}))
}

// GetRelated returns the entries listed in the target's Related field, in
// that order. Ids that no longer exist are skipped.
func (s *EmojiStore) GetRelated(id string) []models.Emoji {
	target, ok := s.col.Get(id)
	if !ok {
		return nil
	}
	var out []models.Emoji
	for _, rid := range target.Related {
		if e, ok := s.col.Get(rid); ok {
			out = append(out, e.Clone())
		}
	}
	return out
}

// CountByCategory returns the number of entries per category id.
func (s *EmojiStore) CountByCategory() map[string]int {
	counts := make(map[string]int)
	for _, e := range s.col.All() {
		counts[e.Category]++
	}
	return counts
}

// Add derives the id from the title, resets Related, Views and CreatedAt,
// and prepends the entry. A derived id that is already in use gets a
// numeric suffix.
func (s *EmojiStore) Add(ctx context.Context, draft models.Emoji) (models.Emoji, error) {
	e := draft.Clone()
	base := slug.Generate(draft.Title.Value)
	if base == "" {
		return models.Emoji{}, ErrEmptyID
	}
	e.Related = []string{}
	e.Views = 0
	e.CreatedAt = s.now()

	added, err := s.col.Prepend(ctx, e, func(item *models.Emoji, taken func(string) bool) error {
		item.ID = slug.Unique(base, taken)
		return nil
	})
	if err != nil {
		return models.Emoji{}, err
	}
	return added.Clone(), nil
}

// Update replaces the entry with the same id. Returns ErrNotFound, without
// persisting, when the id is unknown.
func (s *EmojiStore) Update(ctx context.Context, e models.Emoji) error {
	e = e.Clone()
	if e.Related == nil {
		e.Related = []string{}
	}
	return s.col.Replace(ctx, e, nil)
}

// Delete removes the entry. It reports false when the id is unknown.
func (s *EmojiStore) Delete(ctx context.Context, id string) bool {
	_, ok := s.col.Remove(ctx, id)
	return ok
}

// IncrementViews bumps the view counter and returns the updated entry.
func (s *EmojiStore) IncrementViews(ctx context.Context, id string) (models.Emoji, error) {
	e, err := s.col.Modify(ctx, id, func(e *models.Emoji) { e.Views++ })
	if err != nil {
		return models.Emoji{}, err
	}
	return e.Clone(), nil
}

// Reset restores the seed catalog.
func (s *EmojiStore) Reset(ctx context.Context) {
	s.col.Reset(ctx)
}

func cloneAll(items []models.Emoji) []models.Emoji {
	for i := range items {
		items[i] = items[i].Clone()
	}
	return items
}
