// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package persist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// adapterContract runs the behaviour every Adapter must share.
func adapterContract(t *testing.T, a Adapter, key string) {
	t.Helper()
	ctx := context.Background()

	if _, err := a.Load(ctx, key); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load on empty key: got %v, want ErrNotFound", err)
	}

	if err := a.Save(ctx, key, []byte(`[{"id":"grinning"}]`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := a.Load(ctx, key)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != `[{"id":"grinning"}]` {
		t.Errorf("Load = %s", got)
	}

	if err := a.Save(ctx, key, []byte(`[]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _ = a.Load(ctx, key)
	if string(got) != `[]` {
		t.Errorf("after overwrite Load = %s, want []", got)
	}
}

func TestMemory(t *testing.T) {
	adapterContract(t, NewMemory(), KeyEmojis)
}

func TestMemoryCopiesData(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	buf := []byte(`"a"`)
	m.Save(ctx, KeySettings, buf)
	buf[1] = 'b'

	got, _ := m.Load(ctx, KeySettings)
	if string(got) != `"a"` {
		t.Errorf("stored document changed through caller slice: %s", got)
	}
	got[1] = 'c'
	again, _ := m.Load(ctx, KeySettings)
	if string(again) != `"a"` {
		t.Errorf("stored document changed through returned slice: %s", again)
	}
	if m.Keys() != 1 {
		t.Errorf("Keys() = %d, want 1", m.Keys())
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	f, err := NewFile(filepath.Join(dir, "data"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	adapterContract(t, f, KeyCategories)

	if _, err := os.Stat(filepath.Join(dir, "data", "categories.json")); err != nil {
		t.Errorf("expected categories.json on disk: %v", err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "data", "*.tmp"))
	if len(matches) != 0 {
		t.Errorf("temporary files left behind: %v", matches)
	}
}

func TestFileRejectsUnsafeKeys(t *testing.T) {
	f, err := NewFile(t.TempDir())
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	for _, key := range []string{"../escape", "a/b", "", "UPPER"} {
		if err := f.Save(context.Background(), key, []byte("{}")); err == nil {
			t.Errorf("Save(%q) succeeded, want error", key)
		}
		if _, err := f.Load(context.Background(), key); err == nil || errors.Is(err, ErrNotFound) {
			t.Errorf("Load(%q) = %v, want validation error", key, err)
		}
	}
}
