// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"strings"
	"time"
)

// FormatTag names a bucket of downloadable files.
type FormatTag string

const (
	FormatPNG   FormatTag = "png"
	FormatGIF   FormatTag = "gif"
	FormatImage FormatTag = "image"
	FormatVideo FormatTag = "video"
)

// FormatTags is the canonical display order of the format buckets.
var FormatTags = []FormatTag{FormatPNG, FormatGIF, FormatImage, FormatVideo}

// FileAsset is a single downloadable file inside a format bucket.
type FileAsset struct {
	Name string `json:"name"`
	Size string `json:"size"`
	URL  string `json:"url"`
	Type string `json:"type,omitempty"`
}

// MIMESubtype returns the lowercased part of Type after the slash,
// e.g. "jpeg" for "image/jpeg".
func (f FileAsset) MIMESubtype() string {
	t := strings.ToLower(f.Type)
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	if i := strings.IndexByte(t, '/'); i >= 0 {
		return strings.TrimSpace(t[i+1:])
	}
	return ""
}

// FormatBucket groups files by format tag. Slice order is display order.
type FormatBucket map[FormatTag][]FileAsset

// Emoji is a catalog entry. Entries with a glyph are emoji posts; entries
// without one are file posts that only carry downloads.
type Emoji struct {
	ID          string       `json:"id"`
	Emoji       string       `json:"emoji,omitempty"`
	Title       Text         `json:"title"`
	Description Text         `json:"description"`
	Category    string       `json:"category"`
	Formats     FormatBucket `json:"formats,omitempty"`
	Related     []string     `json:"related"`
	Views       int          `json:"views"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// IsFilePost reports whether the entry has no glyph.
func (e *Emoji) IsFilePost() bool {
	return e.Emoji == ""
}

// Clone returns a deep copy so callers cannot mutate store state.
func (e Emoji) Clone() Emoji {
	out := e
	if e.Related != nil {
		out.Related = make([]string, len(e.Related))
		copy(out.Related, e.Related)
	}
	if e.Formats != nil {
		out.Formats = make(FormatBucket, len(e.Formats))
		for tag, files := range e.Formats {
			out.Formats[tag] = make([]FileAsset, len(files))
			copy(out.Formats[tag], files)
		}
	}
	return out
}
