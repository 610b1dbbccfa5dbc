// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"time"

	"emojiverse/internal/catalog"
	"emojiverse/internal/i18n"
	"emojiverse/internal/models"
)

// emojiView is a catalog entry with its texts resolved for one language.
type emojiView struct {
	ID          string              `json:"id"`
	Emoji       string              `json:"emoji,omitempty"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	Formats     models.FormatBucket `json:"formats,omitempty"`
	Related     []string            `json:"related"`
	Views       int                 `json:"views"`
	FilePost    bool                `json:"file_post"`
	FileCount   int                 `json:"file_count"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func newEmojiView(b *i18n.Bundle, lang string, e models.Emoji) emojiView {
	return emojiView{
		ID:          e.ID,
		Emoji:       e.Emoji,
		Title:       b.Resolve(lang, e.Title),
		Description: b.Resolve(lang, e.Description),
		Category:    e.Category,
		Formats:     e.Formats,
		Related:     e.Related,
		Views:       e.Views,
		FilePost:    e.IsFilePost(),
		FileCount:   len(catalog.Project(e)),
		CreatedAt:   e.CreatedAt,
	}
}

func newEmojiViews(b *i18n.Bundle, lang string, entries []models.Emoji) []emojiView {
	out := make([]emojiView, 0, len(entries))
	for _, e := range entries {
		out = append(out, newEmojiView(b, lang, e))
	}
	return out
}

// categoryView is a category with its name resolved and its entry count.
type categoryView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	PostCount int    `json:"post_count"`
}
