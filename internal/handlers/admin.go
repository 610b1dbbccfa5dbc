// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"emojiverse/internal/cache"
	"emojiverse/internal/media"
	"emojiverse/internal/middleware"
	"emojiverse/internal/models"
	"emojiverse/internal/store"
)

// Admin groups the JSON handlers behind basic auth.
type Admin struct {
	stores  *store.Stores
	cache   cache.Cache
	uploads *media.Manager
}

// NewAdmin creates the admin handler group.
func NewAdmin(stores *store.Stores, c cache.Cache, uploads *media.Manager) *Admin {
	return &Admin{stores: stores, cache: c, uploads: uploads}
}

// invalidate drops cached responses after a mutation. Every rendered
// response embeds settings, footer or catalog data, so the whole cache goes.
func (a *Admin) invalidate(ctx context.Context, action string) {
	a.cache.InvalidateAll(ctx)
	slog.Info("admin change", "action", action, "admin", middleware.AdminFromCtx(ctx))
}

// storeError maps store errors to HTTP responses.
func storeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, store.ErrEmptyID):
		writeError(w, http.StatusUnprocessableEntity, "could not derive an identifier from the title")
	case errors.Is(err, store.ErrSlugTaken):
		writeError(w, http.StatusUnprocessableEntity, "slug is already in use")
	case errors.Is(err, store.ErrReservedID):
		writeError(w, http.StatusUnprocessableEntity, "identifier is reserved")
	default:
		slog.Error("admin store error", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// --- Emojis ---

// emojiInput is the writable part of a catalog entry.
type emojiInput struct {
	Emoji       string              `json:"emoji"`
	Title       models.Text         `json:"title"`
	Description models.Text         `json:"description"`
	Category    string              `json:"category"`
	Formats     models.FormatBucket `json:"formats"`
	Related     []string            `json:"related"`
}

func (in emojiInput) apply(e *models.Emoji) {
	e.Emoji = in.Emoji
	e.Title = in.Title
	e.Description = in.Description
	e.Category = in.Category
	e.Formats = in.Formats
	if in.Related != nil {
		e.Related = in.Related
	}
}

// EmojiList returns every entry with untranslated texts.
func (a *Admin) EmojiList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.stores.Emojis.List())
}

// EmojiCreate adds an entry. The id is derived from the title.
func (a *Admin) EmojiCreate(w http.ResponseWriter, r *http.Request) {
	var in emojiInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var e models.Emoji
	in.apply(&e)
	if msg := validateEmoji(e, a.stores.Categories.Exists); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	created, err := a.stores.Emojis.Add(r.Context(), e)
	if err != nil {
		storeError(w, err)
		return
	}
	a.invalidate(r.Context(), "emoji.create "+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

// EmojiUpdate replaces the writable fields of an entry. Views and the
// creation time are kept.
func (a *Admin) EmojiUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, ok := a.stores.Emojis.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "emoji not found")
		return
	}
	var in emojiInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	in.apply(&existing)
	if msg := validateEmoji(existing, a.stores.Categories.Exists); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	for _, rid := range existing.Related {
		if rid == id {
			writeError(w, http.StatusUnprocessableEntity, "An entry cannot be related to itself.")
			return
		}
	}

	if err := a.stores.Emojis.Update(r.Context(), existing); err != nil {
		storeError(w, err)
		return
	}
	a.invalidate(r.Context(), "emoji.update "+id)
	writeJSON(w, http.StatusOK, existing)
}

// EmojiDelete removes an entry.
func (a *Admin) EmojiDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !a.stores.Emojis.Delete(r.Context(), id) {
		writeError(w, http.StatusNotFound, "emoji not found")
		return
	}
	a.invalidate(r.Context(), "emoji.delete "+id)
	w.WriteHeader(http.StatusNoContent)
}

// --- Categories ---

// CategoryList returns every category with untranslated names.
func (a *Admin) CategoryList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.stores.Categories.List())
}

// CategoryCreate adds a category.
func (a *Admin) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := decodeJSON(w, r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateCategory(c); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	created, err := a.stores.Categories.Add(r.Context(), c)
	if err != nil {
		storeError(w, err)
		return
	}
	a.invalidate(r.Context(), "category.create "+created.ID)
	writeJSON(w, http.StatusCreated, created)
}

// CategoryUpdate replaces a category's name and icon.
func (a *Admin) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := decodeJSON(w, r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c.ID = chi.URLParam(r, "id")
	if msg := validateCategory(c); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	if err := a.stores.Categories.Update(r.Context(), c); err != nil {
		storeError(w, err)
		return
	}
	a.invalidate(r.Context(), "category.update "+c.ID)
	writeJSON(w, http.StatusOK, c)
}

// CategoryDelete removes a category. Entries keep their category id.
func (a *Admin) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !a.stores.Categories.Delete(r.Context(), id) {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	a.invalidate(r.Context(), "category.delete "+id)
	w.WriteHeader(http.StatusNoContent)
}

// --- Pages ---

// pageInput is the writable part of a CMS page.
type pageInput struct {
	Title   string            `json:"title"`
	Slug    string            `json:"slug"`
	Status  models.PageStatus `json:"status"`
	Content string            `json:"content"`
}

func (in pageInput) page() models.Page {
	return models.Page{Title: in.Title, Slug: in.Slug, Status: in.Status, Content: in.Content}
}

// PageList returns every page, drafts included.
func (a *Admin) PageList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.stores.Pages.List())
}

// PageCreate adds a page. The slug is derived from the title when empty.
func (a *Admin) PageCreate(w http.ResponseWriter, r *http.Request) {
	var in pageInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p := in.page()
	if msg := validatePage(p); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	created, err := a.stores.Pages.Add(r.Context(), p)
	if err != nil {
		storeError(w, err)
		return
	}
	a.invalidate(r.Context(), "page.create "+created.Slug)
	writeJSON(w, http.StatusCreated, created)
}

// PageUpdate replaces a page.
func (a *Admin) PageUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid page id")
		return
	}
	var in pageInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	p := in.page()
	p.ID = id
	if p.Status == "" {
		p.Status = models.PageStatusDraft
	}
	if msg := validatePage(p); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	if err := a.stores.Pages.Update(r.Context(), p); err != nil {
		storeError(w, err)
		return
	}
	updated, _ := a.stores.Pages.Get(id)
	a.invalidate(r.Context(), "page.update "+updated.Slug)
	writeJSON(w, http.StatusOK, updated)
}

// PageDelete removes a page.
func (a *Admin) PageDelete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid page id")
		return
	}
	if !a.stores.Pages.Delete(r.Context(), id) {
		writeError(w, http.StatusNotFound, "page not found")
		return
	}
	a.invalidate(r.Context(), "page.delete "+id.String())
	w.WriteHeader(http.StatusNoContent)
}

// --- Footer and settings ---

// FooterUpdate replaces the footer links.
func (a *Admin) FooterUpdate(w http.ResponseWriter, r *http.Request) {
	var f models.FooterContent
	if err := decodeJSON(w, r, &f); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateFooter(f); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	a.stores.Footer.Save(r.Context(), f)
	a.invalidate(r.Context(), "footer.update")
	writeJSON(w, http.StatusOK, a.stores.Footer.Get())
}

// SettingsGet returns the full settings, scripts included.
func (a *Admin) SettingsGet(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.stores.Settings.Get())
}

// SettingsUpdate replaces the site settings.
func (a *Admin) SettingsUpdate(w http.ResponseWriter, r *http.Request) {
	var s models.SiteSettings
	if err := decodeJSON(w, r, &s); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateSettings(s); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	a.stores.Settings.Save(r.Context(), s)
	a.invalidate(r.Context(), "settings.update")
	writeJSON(w, http.StatusOK, a.stores.Settings.Get())
}

// SettingsReset restores the factory settings.
func (a *Admin) SettingsReset(w http.ResponseWriter, r *http.Request) {
	s := a.stores.Settings.Reset(r.Context())
	a.invalidate(r.Context(), "settings.reset")
	writeJSON(w, http.StatusOK, s)
}
