// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "testing"

// TestMediaLibraryItems covers the library items an upload commit produces
// for each format bucket: only image uploads get thumbnails, and sizes are
// shown the way the seed catalog writes them.
func TestMediaLibraryItems(t *testing.T) {
	tests := []struct {
		name      string
		media     Media
		wantImage bool
		wantSize  string
	}{
		{
			name:      "png sticker",
			media:     Media{Name: "logo.png", ContentType: "image/png", SizeBytes: 12 * 1024},
			wantImage: true,
			wantSize:  "12 KB",
		},
		{
			name:      "animated gif",
			media:     Media{Name: "party-parrot.gif", ContentType: "image/gif", SizeBytes: 640 * 1024},
			wantImage: true,
			wantSize:  "640 KB",
		},
		{
			name:      "print jpeg",
			media:     Media{Name: "logo-print.jpg", ContentType: "image/jpeg", SizeBytes: 1258291},
			wantImage: true,
			wantSize:  "1.2 MB",
		},
		{
			name:      "webp sheet",
			media:     Media{Name: "sticker-sheet.webp", ContentType: "image/webp", SizeBytes: 220 * 1024},
			wantImage: true,
			wantSize:  "220 KB",
		},
		{
			name:      "mp4 clip",
			media:     Media{Name: "confetti.mp4", ContentType: "video/mp4", SizeBytes: 2516582},
			wantImage: false,
			wantSize:  "2.4 MB",
		},
		{
			name:      "tiny text file",
			media:     Media{Name: "notes.txt", ContentType: "text/plain", SizeBytes: 300},
			wantImage: false,
			wantSize:  "300 B",
		},
		{
			name:      "missing content type",
			media:     Media{Name: "blob"},
			wantImage: false,
			wantSize:  "0 B",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.media.IsImage(); got != tt.wantImage {
				t.Errorf("%s IsImage() = %v, want %v", tt.media.Name, got, tt.wantImage)
			}
			if got := tt.media.HumanSize(); got != tt.wantSize {
				t.Errorf("%s HumanSize() = %q, want %q", tt.media.Name, got, tt.wantSize)
			}
		})
	}
}

// TestHumanSizeBoundaries pins the unit switch points.
func TestHumanSizeBoundaries(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1024*1024 - 1, "1024 KB"},
		{1024 * 1024, "1.0 MB"},
	}
	for _, tt := range tests {
		if got := HumanSize(tt.n); got != tt.want {
			t.Errorf("HumanSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

// TestMediaAsset verifies the conversion of a library item into a
// downloadable file entry.
func TestMediaAsset(t *testing.T) {
	m := &Media{
		Name:        "confetti.mp4",
		ContentType: "video/mp4",
		SizeBytes:   2516582,
		URL:         "https://cdn.example.com/uploads/2026/01/confetti.mp4",
	}
	got := m.Asset()
	want := FileAsset{Name: "confetti.mp4", Size: "2.4 MB", URL: m.URL, Type: "video/mp4"}
	if got != want {
		t.Errorf("Asset() = %+v, want %+v", got, want)
	}
	if got.MIMESubtype() != "mp4" {
		t.Errorf("MIMESubtype() = %q, want mp4", got.MIMESubtype())
	}
}
