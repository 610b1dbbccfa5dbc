// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"emojiverse/internal/models"
	"emojiverse/internal/persist"
	"emojiverse/internal/slug"
)

// ErrSlugTaken is returned when a page slug is already used by another page.
var ErrSlugTaken = errors.New("store: slug already in use")

// PageStore manages CMS content pages.
type PageStore struct {
	col *Collection[models.Page]
	now func() time.Time
}

// NewPageStore returns a store seeded with the built-in pages.
func NewPageStore(adapter persist.Adapter) *PageStore {
	return &PageStore{
		col: NewCollection(adapter, persist.KeyPages, SeedPages, func(p *models.Page) string { return p.ID.String() }),
		now: time.Now,
	}
}

// Load reads the persisted pages, falling back to the seed.
func (s *PageStore) Load(ctx context.Context) {
	s.col.Load(ctx)
}

// List returns all pages, newest first.
func (s *PageStore) List() []models.Page {
	return s.col.All()
}

// ListPublished returns only published pages.
func (s *PageStore) ListPublished() []models.Page {
	return s.col.Filter(func(p *models.Page) bool { return p.IsPublished() })
}

// Get returns the page with the given id.
func (s *PageStore) Get(id uuid.UUID) (models.Page, bool) {
	return s.col.Get(id.String())
}

// FindBySlug returns the page with the given slug. When publishedOnly is
// set, drafts are treated as missing.
func (s *PageStore) FindBySlug(slugParam string, publishedOnly bool) (models.Page, bool) {
	found := s.col.Filter(func(p *models.Page) bool {
		return p.Slug == slugParam && (!publishedOnly || p.IsPublished())
	})
	if len(found) == 0 {
		return models.Page{}, false
	}
	return found[0], true
}

// Add assigns an id, derives the slug from the title when empty and
// prepends the page. Duplicate slugs are rejected.
func (s *PageStore) Add(ctx context.Context, p models.Page) (models.Page, error) {
	if p.Slug == "" {
		p.Slug = slug.Generate(p.Title)
	}
	if p.Slug == "" {
		return models.Page{}, ErrEmptyID
	}
	if p.Status == "" {
		p.Status = models.PageStatusDraft
	}
	p.ID = uuid.New()
	p.CreatedAt = s.now()
	p.UpdatedAt = p.CreatedAt

	return s.col.Prepend(ctx, p, func(item *models.Page, _ func(string) bool) error {
		if s.col.takenBy(item.Slug, "", pageSlug) {
			return ErrSlugTaken
		}
		return nil
	})
}

// Update replaces the page with the same id, keeping CreatedAt.
func (s *PageStore) Update(ctx context.Context, p models.Page) error {
	if p.Slug == "" {
		p.Slug = slug.Generate(p.Title)
	}
	if p.Slug == "" {
		return ErrEmptyID
	}
	return s.col.Replace(ctx, p, func(item *models.Page) error {
		if s.col.takenBy(item.Slug, item.ID.String(), pageSlug) {
			return ErrSlugTaken
		}
		// Replace only calls check once the id is known to exist.
		item.CreatedAt = s.col.items[s.col.indexLocked(item.ID.String())].CreatedAt
		item.UpdatedAt = s.now()
		return nil
	})
}

// Delete removes the page.
func (s *PageStore) Delete(ctx context.Context, id uuid.UUID) bool {
	_, ok := s.col.Remove(ctx, id.String())
	return ok
}

func pageSlug(p *models.Page) string { return p.Slug }
