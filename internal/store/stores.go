// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"log/slog"

	"emojiverse/internal/persist"
)

// Stores bundles one store per entity kind over a shared adapter.
type Stores struct {
	Emojis     *EmojiStore
	Categories *CategoryStore
	Pages      *PageStore
	Footer     *FooterStore
	Settings   *SiteSettingStore
	Media      *MediaStore
}

// New creates every store. Call Load before serving requests.
func New(adapter persist.Adapter) *Stores {
	return &Stores{
		Emojis:     NewEmojiStore(adapter),
		Categories: NewCategoryStore(adapter),
		Pages:      NewPageStore(adapter),
		Footer:     NewFooterStore(adapter),
		Settings:   NewSiteSettingStore(adapter),
		Media:      NewMediaStore(adapter),
	}
}

// Load reads every collection from the adapter.
func (s *Stores) Load(ctx context.Context) {
	s.Emojis.Load(ctx)
	s.Categories.Load(ctx)
	s.Pages.Load(ctx)
	s.Footer.Load(ctx)
	s.Settings.Load(ctx)
	s.Media.Load(ctx)
	slog.Info("stores loaded",
		"emojis", s.Emojis.col.Len(),
		"categories", s.Categories.col.Len(),
		"pages", s.Pages.col.Len(),
		"media", s.Media.Count(),
	)
}
