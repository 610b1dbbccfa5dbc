// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package persist

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
)

// validKey restricts keys to names that are safe as file names.
var validKey = regexp.MustCompile(`^[a-z0-9_-]+$`)

// File keeps one <key>.json document per collection in a directory.
type File struct {
	dir string
}

// NewFile creates the directory if needed and returns a File adapter.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("persist file dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) path(key string) (string, error) {
	if !validKey.MatchString(key) {
		return "", fmt.Errorf("persist: invalid key %q", key)
	}
	return filepath.Join(f.dir, key+".json"), nil
}

// Load reads the document for key.
func (f *File) Load(_ context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("persist file load %s: %w", key, err)
	}
	return data, nil
}

// Save writes to a temporary file and renames it over the old document so
// readers never see a partial write.
func (f *File) Save(_ context.Context, key string, data []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(f.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("persist file save %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("persist file write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persist file close %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), p); err != nil {
		return fmt.Errorf("persist file rename %s: %w", key, err)
	}
	return nil
}
