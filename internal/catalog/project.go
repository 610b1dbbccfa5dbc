// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog shapes catalog entries for browsing: it flattens format
// buckets into file lists, narrows entries and files by category, format and
// free text, and shuffles presentation order.
package catalog

import (
	"slices"

	"emojiverse/internal/models"
)

// File is a FileAsset tagged with the bucket and the entry it came from.
type File struct {
	models.FileAsset
	Format  models.FormatTag `json:"format"`
	OwnerID string           `json:"owner_id"`
}

// Project flattens an entry's format buckets. Buckets are visited in
// models.FormatTags order, then any other tags in sorted order; files keep
// their bucket order.
func Project(e models.Emoji) []File {
	var out []File
	for _, tag := range bucketOrder(e.Formats) {
		for _, f := range e.Formats[tag] {
			out = append(out, File{FileAsset: f, Format: tag, OwnerID: e.ID})
		}
	}
	return out
}

// ProjectAll projects every entry, in entry order.
func ProjectAll(entries []models.Emoji) []File {
	var out []File
	for _, e := range entries {
		out = append(out, Project(e)...)
	}
	return out
}

// CountByFormat returns the number of files per bucket tag.
func CountByFormat(files []File) map[models.FormatTag]int {
	counts := make(map[models.FormatTag]int)
	for _, f := range files {
		counts[f.Format]++
	}
	return counts
}

func bucketOrder(b models.FormatBucket) []models.FormatTag {
	order := make([]models.FormatTag, 0, len(b))
	for _, tag := range models.FormatTags {
		if _, ok := b[tag]; ok {
			order = append(order, tag)
		}
	}
	var extra []models.FormatTag
	for tag := range b {
		if !slices.Contains(models.FormatTags, tag) {
			extra = append(extra, tag)
		}
	}
	slices.Sort(extra)
	return append(order, extra...)
}
