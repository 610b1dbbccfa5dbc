// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"strings"

	"emojiverse/internal/models"
)

// Resolver turns a Text into the string shown for a language.
type Resolver interface {
	Resolve(lang string, t models.Text) string
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(lang string, t models.Text) string

// Resolve calls f.
func (f ResolverFunc) Resolve(lang string, t models.Text) string { return f(lang, t) }

// RawResolver returns the untranslated value of every Text.
var RawResolver = ResolverFunc(func(_ string, t models.Text) string { return t.Value })

// Query describes one search request.
type Query struct {
	Text     string
	Category string
	Format   string
	Lang     string
}

// Result is the outcome of a search. Issued is false when no query text was
// given, which is different from a query that matched nothing.
type Result struct {
	Entities []models.Emoji `json:"entities"`
	Files    []File         `json:"files"`
	Issued   bool           `json:"issued"`
}

// Empty reports whether nothing matched.
func (r Result) Empty() bool {
	return len(r.Entities) == 0 && len(r.Files) == 0
}

// Engine matches queries against translated titles, descriptions and file
// names.
type Engine struct {
	resolver Resolver
}

// NewEngine returns an engine that translates through r. A nil resolver
// matches against raw values.
func NewEngine(r Resolver) *Engine {
	if r == nil {
		r = RawResolver
	}
	return &Engine{resolver: r}
}

// MatchEntity reports whether the entry's resolved title or description
// contains the lowercased query.
func (e *Engine) MatchEntity(entry models.Emoji, lowerQuery, lang string) bool {
	return containsFold(e.resolver.Resolve(lang, entry.Title), lowerQuery) ||
		containsFold(e.resolver.Resolve(lang, entry.Description), lowerQuery)
}

// Search narrows by category, then matches text. Files come from two
// paths: every file of a matching entry, and every file in the category
// pool whose own name matches. The paths are merged by URL, then narrowed
// by format.
func (e *Engine) Search(entries []models.Emoji, q Query) Result {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	if text == "" {
		return Result{Entities: []models.Emoji{}, Files: []File{}}
	}

	pool := FilterEntities(entries, q.Category)

	matched := []models.Emoji{}
	var ownerFiles, nameFiles []File
	for _, entry := range pool {
		files := Project(entry)
		if e.MatchEntity(entry, text, q.Lang) {
			matched = append(matched, entry)
			ownerFiles = append(ownerFiles, files...)
		}
		for _, f := range files {
			if containsFold(f.Name, text) {
				nameFiles = append(nameFiles, f)
			}
		}
	}

	files := FilterFiles(DedupeByURL(ownerFiles, nameFiles), q.Format)
	if files == nil {
		files = []File{}
	}
	return Result{Entities: matched, Files: files, Issued: true}
}

// Files returns the projected files of the category pool narrowed by format,
// without any text matching. Used by the browse grid and download tabs.
func (e *Engine) Files(entries []models.Emoji, category, format string) []File {
	files := FilterFiles(ProjectAll(FilterEntities(entries, category)), format)
	if files == nil {
		files = []File{}
	}
	return files
}
