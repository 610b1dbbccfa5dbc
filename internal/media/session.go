// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"emojiverse/internal/imaging"
	"emojiverse/internal/models"
	"emojiverse/internal/storage"
	"emojiverse/internal/store"
)

// Handle is one uploaded file owned by a session. URL stays resolvable
// until the handle is released.
type Handle struct {
	ID          uuid.UUID        `json:"id"`
	Name        string           `json:"name"`
	ContentType string           `json:"type"`
	Size        int64            `json:"size_bytes"`
	Format      models.FormatTag `json:"format"`
	Key         string           `json:"-"`
	URL         string           `json:"url"`
	ThumbKey    string           `json:"-"`
	ThumbURL    string           `json:"thumb_url,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// Asset returns the handle as a downloadable file.
func (h *Handle) Asset() models.FileAsset {
	return models.FileAsset{
		Name: h.Name,
		Size: models.HumanSize(h.Size),
		URL:  h.URL,
		Type: h.ContentType,
	}
}

func (h *Handle) media() models.Media {
	return models.Media{
		ID:          h.ID,
		Name:        h.Name,
		ContentType: h.ContentType,
		SizeBytes:   h.Size,
		Key:         h.Key,
		URL:         h.URL,
		ThumbKey:    h.ThumbKey,
		ThumbURL:    h.ThumbURL,
		CreatedAt:   h.CreatedAt,
	}
}

// Session is the arena of handles created by one admin form.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	backend storage.Backend
	library *store.MediaStore
	now     func() time.Time

	mu      sync.Mutex
	handles []*Handle
	closed  bool
	touched time.Time
}

func newSession(backend storage.Backend, library *store.MediaStore, now func() time.Time) *Session {
	t := now()
	return &Session{
		ID:        uuid.New(),
		CreatedAt: t,
		backend:   backend,
		library:   library,
		now:       now,
		touched:   t,
	}
}

// Create validates and uploads a file, returning a handle owned by the
// session. Image files wider than the preview width also get a thumbnail.
func (s *Session) Create(ctx context.Context, name, contentType string, body io.Reader, size int64) (*Handle, error) {
	if size > MaxUploadSize {
		return nil, ErrTooLarge
	}
	data, err := io.ReadAll(io.LimitReader(body, MaxUploadSize+1))
	if err != nil {
		return nil, fmt.Errorf("media: read upload: %w", err)
	}
	if len(data) > MaxUploadSize {
		return nil, ErrTooLarge
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = DetectContentType(name, data)
	}
	if !Allowed(contentType) {
		return nil, fmt.Errorf("%w: %q", ErrTypeNotAllowed, contentType)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	s.touched = s.now()
	s.mu.Unlock()

	now := s.now()
	h := &Handle{
		ID:          uuid.New(),
		Name:        name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Format:      FormatFor(contentType),
		Key:         storage.ObjectKey(now, name),
		CreatedAt:   now,
	}
	if err := s.backend.Put(ctx, h.Key, contentType, bytes.NewReader(data), h.Size); err != nil {
		return nil, err
	}
	h.URL = s.backend.URL(h.Key)

	if imaging.CanThumbnail(contentType) {
		s.attachThumbnail(ctx, h, data)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		// Discarded while uploading; nothing owns the object any more.
		s.deleteObjects(ctx, h)
		return nil, ErrSessionClosed
	}
	s.handles = append(s.handles, h)
	return h, nil
}

// attachThumbnail stores a preview next to the original. Failures only
// cost the preview.
func (s *Session) attachThumbnail(ctx context.Context, h *Handle, data []byte) {
	thumb, err := imaging.Thumbnail(data, imaging.DefaultMaxWidth)
	if err != nil {
		slog.Warn("thumbnail generation failed", "error", err, "key", h.Key)
		return
	}
	if thumb == nil {
		return
	}
	key := h.Key + ".thumb.jpg"
	if err := s.backend.Put(ctx, key, "image/jpeg", bytes.NewReader(thumb), int64(len(thumb))); err != nil {
		slog.Warn("thumbnail upload failed", "error", err, "key", key)
		return
	}
	h.ThumbKey = key
	h.ThumbURL = s.backend.URL(key)
}

// Handles returns the live handles in upload order.
func (s *Session) Handles() []Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Handle, len(s.handles))
	for i, h := range s.handles {
		out[i] = *h
	}
	return out
}

// Release deletes the handle's stored object. The handle's URL stops
// resolving.
func (s *Session) Release(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	var h *Handle
	for i, candidate := range s.handles {
		if candidate.ID == id {
			h = candidate
			s.handles = append(s.handles[:i:i], s.handles[i+1:]...)
			break
		}
	}
	s.touched = s.now()
	s.mu.Unlock()

	if h == nil {
		return ErrHandleNotFound
	}
	return s.deleteObjects(ctx, h)
}

// Discard releases every live handle and closes the session. It is safe
// to call more than once.
func (s *Session) Discard(ctx context.Context) {
	s.mu.Lock()
	handles := s.handles
	s.handles = nil
	s.closed = true
	s.mu.Unlock()

	for _, h := range handles {
		if err := s.deleteObjects(ctx, h); err != nil {
			slog.Warn("upload discard failed", "error", err, "key", h.Key)
		}
	}
	if len(handles) > 0 {
		slog.Info("upload session discarded", "session", s.ID, "released", len(handles))
	}
}

// Commit detaches the live handles from the session, records them in the
// media library and closes the session. Committed objects are no longer
// released by Discard.
func (s *Session) Commit(ctx context.Context) ([]models.Media, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrSessionClosed
	}
	handles := s.handles
	s.handles = nil
	s.closed = true
	s.mu.Unlock()

	out := make([]models.Media, 0, len(handles))
	for _, h := range handles {
		m, err := s.library.Create(ctx, h.media())
		if err != nil {
			return out, fmt.Errorf("media: record %s: %w", h.Name, err)
		}
		out = append(out, m)
	}
	slog.Info("upload session committed", "session", s.ID, "files", len(out))
	return out, nil
}

// Closed reports whether the session was committed or discarded.
func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) lastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched
}

func (s *Session) deleteObjects(ctx context.Context, h *Handle) error {
	if err := s.backend.Delete(ctx, h.Key); err != nil {
		return fmt.Errorf("media: release %s: %w", h.Key, err)
	}
	if h.ThumbKey != "" {
		if err := s.backend.Delete(ctx, h.ThumbKey); err != nil {
			slog.Warn("thumbnail delete failed", "error", err, "key", h.ThumbKey)
		}
	}
	return nil
}
