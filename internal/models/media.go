// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Media is a file in the media library. The object itself lives in the
// storage backend under Key; URL is how clients download it.
type Media struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	ThumbKey    string    `json:"thumb_key,omitempty"`
	ThumbURL    string    `json:"thumb_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsImage returns true if the media item is an image type.
func (m *Media) IsImage() bool {
	return strings.HasPrefix(m.ContentType, "image/")
}

// HumanSize returns a human-readable file size string.
func (m *Media) HumanSize() string {
	return HumanSize(m.SizeBytes)
}

// Asset converts the media item into a FileAsset for a format bucket.
func (m *Media) Asset() FileAsset {
	return FileAsset{
		Name: m.Name,
		Size: m.HumanSize(),
		URL:  m.URL,
		Type: m.ContentType,
	}
}

// HumanSize formats a byte count as B, KB or MB.
func HumanSize(n int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
	)
	switch {
	case n >= mb:
		return fmt.Sprintf("%.1f MB", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.0f KB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
