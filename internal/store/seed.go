// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"emojiverse/internal/models"
	"emojiverse/internal/persist"
)

// seedTime is the creation time stamped on built-in entries.
var seedTime = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

// SeedEmojis returns a fresh copy of the built-in catalog.
func SeedEmojis() []models.Emoji {
	return []models.Emoji{
		{
			ID:          "grinning",
			Emoji:       "😀",
			Title:       models.Literal("Grinning Face"),
			Description: models.Key("emoji.grinning.description"),
			Category:    "smileys-and-people",
			Related:     []string{"cat-face", "red-heart"},
			Views:       120,
			CreatedAt:   seedTime,
		},
		{
			ID:          "cat-face",
			Emoji:       "🐱",
			Title:       models.Key("emoji.cat-face.title"),
			Description: models.Key("emoji.cat-face.description"),
			Category:    "animals-and-nature",
			Formats: models.FormatBucket{
				models.FormatPNG: {
					{Name: "cat-face-512.png", Size: "48 KB", URL: "/static/emoji/cat-face-512.png", Type: "image/png"},
				},
				models.FormatGIF: {
					{Name: "cat-face-wave.gif", Size: "310 KB", URL: "/static/emoji/cat-face-wave.gif", Type: "image/gif"},
				},
			},
			Related:   []string{"grinning"},
			Views:     87,
			CreatedAt: seedTime,
		},
		{
			ID:          "red-heart",
			Emoji:       "❤️",
			Title:       models.Key("emoji.red-heart.title"),
			Description: models.Literal("Classic love heart."),
			Category:    "symbols",
			Related:     []string{"grinning", "fire"},
			Views:       230,
			CreatedAt:   seedTime,
		},
		{
			ID:          "fire",
			Emoji:       "🔥",
			Title:       models.Literal("Fire"),
			Description: models.Literal("Something is hot or lit."),
			Category:    "symbols",
			Formats: models.FormatBucket{
				models.FormatPNG: {
					{Name: "fire-256.png", Size: "22 KB", URL: "/static/emoji/fire-256.png", Type: "image/png"},
				},
			},
			Related:   []string{"red-heart"},
			Views:     310,
			CreatedAt: seedTime,
		},
		{
			ID:          "logo-file",
			Title:       models.Literal("Logo Pack"),
			Description: models.Literal("Brand marks in several sizes."),
			Category:    "uncategorized",
			Formats: models.FormatBucket{
				models.FormatPNG: {
					{Name: "logo.png", Size: "12 KB", URL: "/static/files/logo.png", Type: "image/png"},
				},
				models.FormatImage: {
					{Name: "logo-print.jpg", Size: "1.2 MB", URL: "/static/files/logo-print.jpg", Type: "image/jpeg"},
				},
			},
			Related:   []string{},
			Views:     14,
			CreatedAt: seedTime,
		},
		{
			ID:          "sticker-pack",
			Title:       models.Literal("Sticker Pack"),
			Description: models.Literal("Animated stickers and clips."),
			Category:    "uncategorized",
			Formats: models.FormatBucket{
				models.FormatGIF: {
					{Name: "party-parrot.gif", Size: "640 KB", URL: "/static/files/party-parrot.gif", Type: "image/gif"},
				},
				models.FormatImage: {
					{Name: "sticker-sheet.webp", Size: "220 KB", URL: "/static/files/sticker-sheet.webp", Type: "image/webp"},
				},
				models.FormatVideo: {
					{Name: "confetti.mp4", Size: "2.4 MB", URL: "/static/files/confetti.mp4", Type: "video/mp4"},
				},
			},
			Related:   []string{"logo-file"},
			Views:     42,
			CreatedAt: seedTime,
		},
	}
}

// SeedCategories returns the built-in categories.
func SeedCategories() []models.Category {
	return []models.Category{
		{ID: "smileys-and-people", Name: models.Key("category.smileys-and-people"), Icon: "smile"},
		{ID: "animals-and-nature", Name: models.Key("category.animals-and-nature"), Icon: "leaf"},
		{ID: "food-and-drink", Name: models.Key("category.food-and-drink"), Icon: "coffee"},
		{ID: "symbols", Name: models.Key("category.symbols"), Icon: "heart"},
		{ID: "uncategorized", Name: models.Key("category.uncategorized"), Icon: "folder"},
	}
}

// SeedPages returns the built-in CMS pages.
func SeedPages() []models.Page {
	return []models.Page{
		{
			ID:        uuid.MustParse("6f1c2a0e-4d0b-4c39-9a4e-2f7f1d8a9b01"),
			Title:     "About",
			Slug:      "about",
			Status:    models.PageStatusPublished,
			Content:   "# About EmojiVerse\n\nBrowse, search and download emoji and file assets.",
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:        uuid.MustParse("6f1c2a0e-4d0b-4c39-9a4e-2f7f1d8a9b02"),
			Title:     "Privacy Policy",
			Slug:      "privacy",
			Status:    models.PageStatusPublished,
			Content:   "# Privacy Policy\n\nWe store no personal data beyond server logs.",
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
		{
			ID:        uuid.MustParse("6f1c2a0e-4d0b-4c39-9a4e-2f7f1d8a9b03"),
			Title:     "Terms of Service",
			Slug:      "terms",
			Status:    models.PageStatusDraft,
			Content:   "# Terms\n\nDraft.",
			CreatedAt: seedTime,
			UpdatedAt: seedTime,
		},
	}
}

// SeedFooter returns the built-in footer links.
func SeedFooter() models.FooterContent {
	return models.FooterContent{
		Navigation: []models.Link{
			{Label: "Home", URL: "/"},
			{Label: "Categories", URL: "/categories"},
			{Label: "Search", URL: "/search"},
		},
		Legal: []models.Link{
			{Label: "Privacy Policy", URL: "/p/privacy"},
			{Label: "About", URL: "/p/about"},
		},
		Social: []models.SocialLink{
			{Label: "GitHub", URL: "https://github.com/emojiverse", Icon: "github", AriaLabel: "EmojiVerse on GitHub"},
			{Label: "X", URL: "https://x.com/emojiverse", Icon: "x", AriaLabel: "EmojiVerse on X"},
		},
	}
}

// DefaultSettings returns the factory site settings.
func DefaultSettings() models.SiteSettings {
	return models.SiteSettings{
		SiteName:             "EmojiVerse",
		LogoURL:              "/static/logo.svg",
		FaviconURL:           "/favicon.ico",
		PrimaryColor:         "#6366f1",
		AccentColor:          "#f59e0b",
		DownloadTimerSeconds: 5,
		Ads: []models.AdPlacement{
			{Slot: "header", Enabled: false},
			{Slot: "sidebar", Enabled: false},
			{Slot: "download", Enabled: false},
		},
	}
}

// SeedDocuments returns every seed collection encoded under its storage
// key, for backends that are populated ahead of first use.
func SeedDocuments() (map[string][]byte, error) {
	docs := map[string]any{
		persist.KeyEmojis:     SeedEmojis(),
		persist.KeyCategories: SeedCategories(),
		persist.KeyPages:      SeedPages(),
		persist.KeyFooter:     SeedFooter(),
		persist.KeySettings:   DefaultSettings(),
	}
	out := make(map[string][]byte, len(docs))
	for key, v := range docs {
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode seed %s: %w", key, err)
		}
		out[key] = data
	}
	return out, nil
}
