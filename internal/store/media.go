// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"github.com/google/uuid"

	"emojiverse/internal/models"
	"emojiverse/internal/persist"
)

// MediaStore is the media library: files uploaded through the admin and
// kept after their upload session was committed.
type MediaStore struct {
	col *Collection[models.Media]
}

// NewMediaStore returns an empty media library backed by adapter.
func NewMediaStore(adapter persist.Adapter) *MediaStore {
	return &MediaStore{
		col: NewCollection(adapter, persist.KeyMedia, func() []models.Media { return nil }, func(m *models.Media) string { return m.ID.String() }),
	}
}

// Load reads the persisted library.
func (s *MediaStore) Load(ctx context.Context) {
	s.col.Load(ctx)
}

// Create records a media item, assigning an id when it has none.
func (s *MediaStore) Create(ctx context.Context, m models.Media) (models.Media, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return s.col.Prepend(ctx, m, nil)
}

// FindByID retrieves a media item by id.
func (s *MediaStore) FindByID(id uuid.UUID) (models.Media, bool) {
	return s.col.Get(id.String())
}

// List returns a page of media items, newest first.
func (s *MediaStore) List(limit, offset int) []models.Media {
	all := s.col.All()
	if offset >= len(all) {
		return nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end]
}

// Delete removes a media item and returns it so the caller can delete the
// stored object.
func (s *MediaStore) Delete(ctx context.Context, id uuid.UUID) (models.Media, bool) {
	return s.col.Remove(ctx, id.String())
}

// Count returns the number of media items.
func (s *MediaStore) Count() int {
	return s.col.Len()
}
