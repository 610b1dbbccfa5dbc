// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"

	"emojiverse/internal/storage"
)

// Objects serves stored uploads straight from the backend. Only mounted
// when the backend has no public URL of its own (the in-memory one).
func Objects(b storage.Backend) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "*")
		if !strings.HasPrefix(key, "uploads/") || strings.Contains(key, "..") {
			http.NotFound(w, r)
			return
		}
		data, err := b.Get(r.Context(), key)
		if errors.Is(err, storage.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			slog.Error("object read failed", "error", err, "key", key)
			http.Error(w, "Bad Gateway", http.StatusBadGateway)
			return
		}

		ct := mime.TypeByExtension(path.Ext(key))
		if ct == "" {
			ct = http.DetectContentType(data)
		}
		w.Header().Set("Content-Type", ct)
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		w.Write(data)
	}
}
