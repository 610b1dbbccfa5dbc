// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"strings"

	"emojiverse/internal/models"
)

// Derived tags computed from bucket and MIME type rather than stored.
const (
	TagAll    = "all"
	TagImages = "images"
	TagVideos = "videos"
)

// ValidTag reports whether tag is accepted by FilterFiles.
func ValidTag(tag string) bool {
	switch tag {
	case "", TagAll, TagImages, TagVideos:
		return true
	}
	for _, t := range models.FormatTags {
		if string(t) == tag {
			return true
		}
	}
	return false
}

// FilterFiles narrows files to one format tag. "images" keeps image-bucket
// files except png and gif ones, which have their own tabs; "videos" is the
// video bucket. An empty tag or "all" keeps everything.
func FilterFiles(files []File, tag string) []File {
	if tag == "" || tag == TagAll {
		return files
	}
	out := make([]File, 0, len(files))
	for _, f := range files {
		if matchesTag(f, tag) {
			out = append(out, f)
		}
	}
	return out
}

func matchesTag(f File, tag string) bool {
	switch tag {
	case TagImages:
		if f.Format != models.FormatImage {
			return false
		}
		sub := f.MIMESubtype()
		return sub != "png" && sub != "gif"
	case TagVideos:
		return f.Format == models.FormatVideo
	default:
		return string(f.Format) == tag
	}
}

// FilterEntities narrows entries to one category; the "all" sentinel keeps
// everything.
func FilterEntities(entries []models.Emoji, category string) []models.Emoji {
	if models.IsAll(category) {
		return entries
	}
	out := make([]models.Emoji, 0, len(entries))
	for _, e := range entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// DedupeByURL merges file lists keeping one file per URL. A URL stays at
// the position where it was first seen and carries the last-seen file.
func DedupeByURL(lists ...[]File) []File {
	index := make(map[string]int)
	var out []File
	for _, list := range lists {
		for _, f := range list {
			if i, ok := index[f.URL]; ok {
				out[i] = f
				continue
			}
			index[f.URL] = len(out)
			out = append(out, f)
		}
	}
	return out
}

func containsFold(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}
