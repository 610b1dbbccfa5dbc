// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"emojiverse/internal/media"
	"emojiverse/internal/models"
)

// mediaPageSize is the default page size of the media library listing.
const mediaPageSize = 50

// uploadSession resolves the {sid} URL parameter to an open session.
func (a *Admin) uploadSession(w http.ResponseWriter, r *http.Request) (*media.Session, bool) {
	sid, err := uuid.Parse(chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return nil, false
	}
	s, err := a.uploads.Get(r.Context(), sid)
	if err != nil {
		writeError(w, http.StatusNotFound, "upload session not found or expired")
		return nil, false
	}
	return s, true
}

// uploadError maps media errors to HTTP responses.
func uploadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, media.ErrTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "File too large. Maximum size is 50 MB.")
	case errors.Is(err, media.ErrEmptyFile), errors.Is(err, media.ErrTypeNotAllowed):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, media.ErrHandleNotFound):
		writeError(w, http.StatusNotFound, "upload not found")
	case errors.Is(err, media.ErrSessionClosed), errors.Is(err, media.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, "upload session not found or expired")
	default:
		slog.Error("object storage error", "error", err)
		writeError(w, http.StatusBadGateway, "object storage is unavailable")
	}
}

// UploadOpen starts an upload session for one admin form.
func (a *Admin) UploadOpen(w http.ResponseWriter, r *http.Request) {
	s := a.uploads.Open()
	writeJSON(w, http.StatusCreated, map[string]any{"id": s.ID, "created_at": s.CreatedAt})
}

// UploadFile stores one multipart file in the session.
func (a *Admin) UploadFile(w http.ResponseWriter, r *http.Request) {
	s, ok := a.uploadSession(w, r)
	if !ok {
		return
	}

	// Limit request body to MaxUploadSize plus some overhead for form fields.
	r.Body = http.MaxBytesReader(w, r.Body, media.MaxUploadSize+1024)
	if err := r.ParseMultipartForm(media.MaxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			uploadError(w, media.ErrTooLarge)
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided.")
		return
	}
	defer file.Close()

	h, err := s.Create(r.Context(), header.Filename, header.Header.Get("Content-Type"), file, header.Size)
	if err != nil {
		uploadError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, h)
}

// UploadRelease deletes one uploaded file from the session.
func (a *Admin) UploadRelease(w http.ResponseWriter, r *http.Request) {
	s, ok := a.uploadSession(w, r)
	if !ok {
		return
	}
	hid, err := uuid.Parse(chi.URLParam(r, "hid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid upload id")
		return
	}
	if err := s.Release(r.Context(), hid); err != nil {
		uploadError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadCommit keeps the session's files, records them in the media
// library and returns them grouped into format buckets ready to be put on
// an entry.
func (a *Admin) UploadCommit(w http.ResponseWriter, r *http.Request) {
	sid, err := uuid.Parse(chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}
	handles, err := a.uploads.Commit(r.Context(), sid)
	if err != nil {
		uploadError(w, err)
		return
	}

	formats := models.FormatBucket{}
	for i := range handles {
		h := &handles[i]
		formats[h.Format] = append(formats[h.Format], h.Asset())
	}
	a.invalidate(r.Context(), fmt.Sprintf("uploads.commit %s (%d files)", sid, len(handles)))
	writeJSON(w, http.StatusOK, map[string]any{"files": handles, "formats": formats})
}

// UploadDiscard releases every file of the session.
func (a *Admin) UploadDiscard(w http.ResponseWriter, r *http.Request) {
	sid, err := uuid.Parse(chi.URLParam(r, "sid"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}
	if err := a.uploads.Discard(r.Context(), sid); err != nil {
		uploadError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MediaList returns a page of the media library.
func (a *Admin) MediaList(w http.ResponseWriter, r *http.Request) {
	limit, err := intParam(r, "limit", mediaPageSize, 1, 200)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	offset, err := intParam(r, "offset", 0, 0, 1<<30)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	items := a.stores.Media.List(limit, offset)
	if items == nil {
		items = []models.Media{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": a.stores.Media.Count()})
}

// MediaDelete removes a library item and its stored objects.
func (a *Admin) MediaDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid media id")
		return
	}
	deleted, ok := a.stores.Media.Delete(r.Context(), id)
	if !ok {
		writeError(w, http.StatusNotFound, "media not found")
		return
	}

	// Object cleanup is best-effort; the library entry is already gone.
	backend := a.uploads.Backend()
	if err := backend.Delete(r.Context(), deleted.Key); err != nil {
		slog.Warn("media object delete failed", "error", err, "key", deleted.Key)
	}
	if deleted.ThumbKey != "" {
		if err := backend.Delete(r.Context(), deleted.ThumbKey); err != nil {
			slog.Warn("media thumbnail delete failed", "error", err, "key", deleted.ThumbKey)
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
