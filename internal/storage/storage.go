// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package storage holds the binary objects behind downloadable assets.
// Production uses an S3-compatible bucket via the AWS SDK v2; development
// and tests use the in-memory backend.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned by Get for a missing object.
var ErrNotFound = errors.New("storage: object not found")

// Backend stores and serves uploaded objects.
type Backend interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

var (
	_ Backend = (*S3)(nil)
	_ Backend = (*Memory)(nil)
)

// ObjectKey builds a unique, date-partitioned key for an uploaded file,
// e.g. "uploads/2026/10/<uuid>.png".
func ObjectKey(now time.Time, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("uploads/%04d/%02d/%s%s", now.Year(), int(now.Month()), uuid.New().String(), ext)
}

type object struct {
	contentType string
	data        []byte
}

// Memory is a process-local Backend.
type Memory struct {
	mu      sync.RWMutex
	objects map[string]object
	baseURL string
}

// NewMemory returns an empty backend whose URLs are baseURL + "/" + key.
func NewMemory(baseURL string) *Memory {
	return &Memory{objects: make(map[string]object), baseURL: strings.TrimRight(baseURL, "/")}
}

func (m *Memory) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return fmt.Errorf("memory upload %s: %w", key, err)
	}
	m.mu.Lock()
	m.objects[key] = object{contentType: contentType, data: buf.Bytes()}
	m.mu.Unlock()
	return nil
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	obj, ok := m.objects[key]
	if !ok {
		return nil, ErrNotFound
	}
	return bytes.Clone(obj.data), nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) URL(key string) string {
	return m.baseURL + "/" + key
}

// Len returns the number of stored objects.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
