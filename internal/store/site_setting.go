// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"

	"emojiverse/internal/models"
	"emojiverse/internal/persist"
)

// SiteSettingStore holds the branding and ad configuration. It starts from
// DefaultSettings and is overridden by whatever was saved last.
type SiteSettingStore struct {
	doc *Document[models.SiteSettings]
}

// NewSiteSettingStore returns a settings store backed by adapter.
func NewSiteSettingStore(adapter persist.Adapter) *SiteSettingStore {
	return &SiteSettingStore{doc: NewDocument(adapter, persist.KeySettings, DefaultSettings)}
}

// Load applies the persisted settings over the defaults.
func (s *SiteSettingStore) Load(ctx context.Context) {
	s.doc.Load(ctx)
}

// Get returns the current settings.
func (s *SiteSettingStore) Get() models.SiteSettings {
	v := s.doc.Get()
	v.Ads = append([]models.AdPlacement(nil), v.Ads...)
	return v
}

// Save replaces and persists the settings.
func (s *SiteSettingStore) Save(ctx context.Context, v models.SiteSettings) {
	s.doc.Save(ctx, v)
}

// Reset restores the defaults and returns them.
func (s *SiteSettingStore) Reset(ctx context.Context) models.SiteSettings {
	return s.doc.Reset(ctx)
}

// FooterStore holds the footer link lists.
type FooterStore struct {
	doc *Document[models.FooterContent]
}

// NewFooterStore returns a footer store backed by adapter.
func NewFooterStore(adapter persist.Adapter) *FooterStore {
	return &FooterStore{doc: NewDocument(adapter, persist.KeyFooter, SeedFooter)}
}

// Load applies the persisted footer over the seed.
func (s *FooterStore) Load(ctx context.Context) {
	s.doc.Load(ctx)
}

// Get returns the current footer content.
func (s *FooterStore) Get() models.FooterContent {
	return s.doc.Get()
}

// Save replaces and persists the footer content.
func (s *FooterStore) Save(ctx context.Context, f models.FooterContent) {
	s.doc.Save(ctx, f)
}
