// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"math/rand/v2"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"emojiverse/internal/cache"
	"emojiverse/internal/catalog"
	"emojiverse/internal/feed"
	"emojiverse/internal/i18n"
	"emojiverse/internal/middleware"
	"emojiverse/internal/models"
	"emojiverse/internal/store"
)

// maxFeedPageSize bounds the page_size query parameter of the feed.
const maxFeedPageSize = 48

// PublicOptions configures the public handlers.
type PublicOptions struct {
	SiteURL      string
	FeedPageSize int
	FeedDelay    time.Duration
}

// Public groups the read-only catalog endpoints.
type Public struct {
	stores *store.Stores
	bundle *i18n.Bundle
	engine *catalog.Engine
	cache  cache.Cache
	opts   PublicOptions
}

// NewPublic creates the public handler group.
func NewPublic(stores *store.Stores, bundle *i18n.Bundle, c cache.Cache, opts PublicOptions) *Public {
	if opts.FeedPageSize <= 0 {
		opts.FeedPageSize = feed.DefaultPageSize
	}
	return &Public{
		stores: stores,
		bundle: bundle,
		engine: catalog.NewEngine(bundle),
		cache:  c,
		opts:   opts,
	}
}

// lang returns the language negotiated by the Locale middleware.
func (p *Public) lang(r *http.Request) string {
	if l := middleware.LocaleFromCtx(r.Context()); l != "" {
		return l
	}
	return p.bundle.Fallback()
}

// Health reports liveness.
func (p *Public) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Categories lists the categories with translated names and entry counts,
// preceded by the "all" pseudo-category.
func (p *Public) Categories(w http.ResponseWriter, r *http.Request) {
	lang := p.lang(r)
	counts := p.stores.Emojis.CountByCategory()
	cats := p.stores.Categories.List()

	total := 0
	for _, n := range counts {
		total += n
	}
	out := make([]categoryView, 0, len(cats)+1)
	out = append(out, categoryView{
		ID:        models.AllCategories,
		Name:      p.bundle.T(lang, "category.all", nil),
		Icon:      "grid",
		PostCount: total,
	})
	for _, c := range cats {
		out = append(out, categoryView{
			ID:        c.ID,
			Name:      p.bundle.Resolve(lang, c.Name),
			Icon:      c.Icon,
			PostCount: counts[c.ID],
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// Emojis lists the entries of a category (all by default).
func (p *Public) Emojis(w http.ResponseWriter, r *http.Request) {
	entries := p.stores.Emojis.GetByCategory(r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, newEmojiViews(p.bundle, p.lang(r), entries))
}

// Emoji returns one entry and counts the view.
func (p *Public) Emoji(w http.ResponseWriter, r *http.Request) {
	e, err := p.stores.Emojis.IncrementViews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "emoji not found")
		return
	}
	writeJSON(w, http.StatusOK, newEmojiView(p.bundle, p.lang(r), e))
}

// Related returns the entries linked from one entry.
func (p *Public) Related(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := p.stores.Emojis.Get(id); !ok {
		writeError(w, http.StatusNotFound, "emoji not found")
		return
	}
	writeJSON(w, http.StatusOK, newEmojiViews(p.bundle, p.lang(r), p.stores.Emojis.GetRelated(id)))
}

// EmojiFiles returns the download list of one entry, narrowed by format.
func (p *Public) EmojiFiles(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if !catalog.ValidTag(format) {
		writeError(w, http.StatusUnprocessableEntity, "unknown format "+format)
		return
	}
	e, ok := p.stores.Emojis.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "emoji not found")
		return
	}
	files := catalog.FilterFiles(catalog.Project(e), format)
	if files == nil {
		files = []catalog.File{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"files":  files,
		"counts": catalog.CountByFormat(catalog.Project(e)),
	})
}

// Files returns the browse grid: every file of a category, by format.
func (p *Public) Files(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if !catalog.ValidTag(format) {
		writeError(w, http.StatusUnprocessableEntity, "unknown format "+format)
		return
	}
	writeJSON(w, http.StatusOK, p.engine.Files(p.stores.Emojis.List(), q.Get("category"), format))
}

// searchResponse is the search result with resolved entity texts.
type searchResponse struct {
	Query    string         `json:"query"`
	Issued   bool           `json:"issued"`
	Entities []emojiView    `json:"entities"`
	Files    []catalog.File `json:"files"`
	Empty    bool           `json:"empty"`
	Message  string         `json:"message,omitempty"`
}

// Search matches the query against translated entry texts and file names.
func (p *Public) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	format := q.Get("format")
	if !catalog.ValidTag(format) {
		writeError(w, http.StatusUnprocessableEntity, "unknown format "+format)
		return
	}
	lang := p.lang(r)
	res := p.engine.Search(p.stores.Emojis.List(), catalog.Query{
		Text:     q.Get("q"),
		Category: q.Get("category"),
		Format:   format,
		Lang:     lang,
	})

	out := searchResponse{
		Query:    q.Get("q"),
		Issued:   res.Issued,
		Entities: newEmojiViews(p.bundle, lang, res.Entities),
		Files:    res.Files,
		Empty:    res.Issued && res.Empty(),
	}
	if out.Empty {
		out.Message = p.bundle.T(lang, "search.empty", map[string]string{"query": out.Query})
	}
	writeJSON(w, http.StatusOK, out)
}

// feedResponse is one page of the shuffled feed.
type feedResponse struct {
	Items     []emojiView `json:"items"`
	Total     int         `json:"total"`
	HasMore   bool        `json:"has_more"`
	NextToken string      `json:"next_token,omitempty"`
}

// Feed serves the infinite-scroll feed. The first request draws a shuffle
// seed and fixes the page size; the page token carries both, plus a
// fingerprint of the entries, so later pages continue the same order
// without server-side state. A token issued before an entry was added or
// removed is rejected with 410 and the client starts over.
func (p *Public) Feed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var cur feed.Cursor
	token := q.Get("token")
	if token != "" {
		var err error
		if cur, err = feed.DecodeCursor(token); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if cur.PageSize > maxFeedPageSize {
			writeError(w, http.StatusUnprocessableEntity, "page token has an out of range page size")
			return
		}
	} else {
		pageSize, err := intParam(r, "page_size", p.opts.FeedPageSize, 1, maxFeedPageSize)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		cur = feed.Cursor{Seed: rand.Uint64(), PageSize: pageSize, Category: q.Get("category")}
	}

	// Sort first so the permutation depends only on the entry set.
	entries := p.stores.Emojis.GetByCategory(cur.Category)
	slices.SortFunc(entries, func(a, b models.Emoji) int { return strings.Compare(a.ID, b.ID) })
	ids := make([]string, len(entries))
	for i := range entries {
		ids[i] = entries[i].ID
	}
	snapshot := feed.Fingerprint(ids)
	if token == "" {
		cur.Snapshot = snapshot
	} else if err := cur.Check(snapshot); err != nil {
		writeError(w, http.StatusGone, "the feed changed, start again from the first page")
		return
	}
	catalog.Shuffle(entries, catalog.Seeded(cur.Seed))

	step, err := feed.LoadPage(r.Context(), feed.NewSliceFetcher(entries, p.opts.FeedDelay), cur.Offset, cur.PageSize)
	if err != nil {
		// The client went away during the simulated latency.
		return
	}

	out := feedResponse{
		Items: newEmojiViews(p.bundle, p.lang(r), step.Items),
		Total: step.Total,
	}
	if step.HasMore {
		cur.Offset = step.Next
		next, err := feed.EncodeCursor(cur)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "could not encode page token")
			return
		}
		out.HasMore = true
		out.NextToken = next
	}
	writeJSON(w, http.StatusOK, out)
}

// Footer returns the footer link lists.
func (p *Public) Footer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.stores.Footer.Get())
}

// Settings returns the public subset of the site settings.
func (p *Public) Settings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.stores.Settings.Get().Public())
}

// AdsTxt serves the ads.txt body configured in the settings.
func (p *Public) AdsTxt(w http.ResponseWriter, r *http.Request) {
	body := p.stores.Settings.Get().AdsTxt
	if body == "" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(body))
}
