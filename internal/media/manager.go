// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package media

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"emojiverse/internal/storage"
	"emojiverse/internal/store"
)

// DefaultSessionTTL is how long an idle upload session lives.
const DefaultSessionTTL = 30 * time.Minute

// Manager tracks open upload sessions and discards the ones left idle
// longer than the TTL, so abandoned forms do not leak stored objects.
type Manager struct {
	backend storage.Backend
	library *store.MediaStore
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewManager returns a manager. ttl <= 0 selects DefaultSessionTTL.
func NewManager(backend storage.Backend, library *store.MediaStore, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &Manager{
		backend:  backend,
		library:  library,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Backend returns the storage the sessions upload to.
func (m *Manager) Backend() storage.Backend {
	return m.backend
}

// Open starts a new session.
func (m *Manager) Open() *Session {
	s := newSession(m.backend, m.library, m.now)
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	slog.Debug("upload session opened", "session", s.ID)
	return s
}

// Get returns an open session. Expired sessions are discarded and reported
// as missing.
func (m *Manager) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	var stale *Session
	m.mu.Lock()
	s, ok := m.sessions[id]
	if ok && m.expired(s) {
		delete(m.sessions, id)
		stale, ok = s, false
	}
	m.mu.Unlock()

	if stale != nil {
		stale.Discard(ctx)
	}
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Commit commits the session and forgets it.
func (m *Manager) Commit(ctx context.Context, id uuid.UUID) ([]Handle, error) {
	s, err := m.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	handles := s.Handles()
	if _, err := s.Commit(ctx); err != nil {
		return nil, err
	}
	m.forget(id)
	return handles, nil
}

// Discard discards the session and forgets it.
func (m *Manager) Discard(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}
	s.Discard(ctx)
	return nil
}

// Len returns the number of tracked sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Sweep discards every expired session and returns how many it removed.
func (m *Manager) Sweep(ctx context.Context) int {
	m.mu.Lock()
	var expired []*Session
	for id, s := range m.sessions {
		if m.expired(s) {
			expired = append(expired, s)
			delete(m.sessions, id)
		}
	}
	m.mu.Unlock()

	for _, s := range expired {
		s.Discard(ctx)
	}
	if len(expired) > 0 {
		slog.Info("expired upload sessions discarded", "count", len(expired))
	}
	return len(expired)
}

// Run sweeps expired sessions every interval until ctx is cancelled.
func (m *Manager) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep(ctx)
		}
	}
}

// Shutdown discards every open session.
func (m *Manager) Shutdown(ctx context.Context) {
	m.mu.Lock()
	open := m.sessions
	m.sessions = make(map[uuid.UUID]*Session)
	m.mu.Unlock()
	for _, s := range open {
		s.Discard(ctx)
	}
}

func (m *Manager) forget(id uuid.UUID) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

func (m *Manager) expired(s *Session) bool {
	return m.now().Sub(s.lastActivity()) > m.ttl
}
