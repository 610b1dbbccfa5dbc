// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package media manages uploaded file assets. Every upload is owned by a
// Session, the arena of one admin form: handles released or left behind
// when the session is discarded have their stored objects deleted, and only
// handles detached by Commit outlive it.
package media

import (
	"bytes"
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"emojiverse/internal/models"
)

// MaxUploadSize is the largest accepted file (50 MB).
const MaxUploadSize = 50 << 20

var (
	ErrSessionNotFound = errors.New("media: upload session not found")
	ErrSessionClosed   = errors.New("media: upload session closed")
	ErrHandleNotFound  = errors.New("media: upload handle not found")
	ErrTooLarge        = errors.New("media: file too large")
	ErrEmptyFile       = errors.New("media: empty file")
	ErrTypeNotAllowed  = errors.New("media: file type not allowed")
)

// allowedTypes defines the MIME types accepted for upload.
var allowedTypes = map[string]bool{
	"image/png":     true,
	"image/gif":     true,
	"image/jpeg":    true,
	"image/webp":    true,
	"image/svg+xml": true,
	"video/mp4":     true,
	"video/webm":    true,
}

// Allowed reports whether contentType may be uploaded.
func Allowed(contentType string) bool {
	return allowedTypes[contentType]
}

// DetectContentType sniffs the first bytes of a file. SVG is recognised by
// extension because sniffing reports it as XML or plain text.
func DetectContentType(filename string, data []byte) string {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	if strings.EqualFold(filepath.Ext(filename), ".svg") &&
		(strings.Contains(ct, "xml") || strings.Contains(ct, "text/plain")) {
		return "image/svg+xml"
	}
	if ct == "application/octet-stream" && bytes.HasPrefix(head, []byte{0x1A, 0x45, 0xDF, 0xA3}) {
		return "video/webm"
	}
	return ct
}

// FormatFor returns the format bucket a file of contentType belongs to.
func FormatFor(contentType string) models.FormatTag {
	switch {
	case contentType == "image/png":
		return models.FormatPNG
	case contentType == "image/gif":
		return models.FormatGIF
	case strings.HasPrefix(contentType, "video/"):
		return models.FormatVideo
	default:
		return models.FormatImage
	}
}
