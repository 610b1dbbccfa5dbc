// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package feed

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ErrInvalidToken is returned when a page token cannot be decoded.
var ErrInvalidToken = errors.New("feed: invalid page token")

// ErrStaleToken is returned by Cursor.Check when the source changed since
// the token was issued.
var ErrStaleToken = errors.New("feed: source changed since the first page")

// Cursor carries the position of a stateless HTTP feed. Seed keeps the
// shuffle stable, Offset is the number of items already served, PageSize
// is fixed by the first request and Snapshot identifies the source the
// order was drawn from.
type Cursor struct {
	Seed     uint64 `json:"s"`
	Offset   int    `json:"o"`
	PageSize int    `json:"n"`
	Snapshot uint64 `json:"f"`
	Category string `json:"c,omitempty"`
}

// Check reports ErrStaleToken unless the cursor was issued for the source
// with the given fingerprint.
func (c Cursor) Check(snapshot uint64) error {
	if c.Snapshot != snapshot {
		return ErrStaleToken
	}
	return nil
}

// Fingerprint hashes a set of ids independently of their order. Any add or
// delete changes it; reordering does not.
func Fingerprint(ids []string) uint64 {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	d := xxhash.New()
	for _, id := range sorted {
		d.WriteString(id)
		d.Write([]byte{0})
	}
	return d.Sum64()
}

// EncodeCursor serialises the cursor into a URL-safe page token.
func EncodeCursor(c Cursor) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("feed: encode token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeCursor parses a token produced by EncodeCursor.
func DecodeCursor(token string) (Cursor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Cursor{}, ErrInvalidToken
	}
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	var c Cursor
	if err := json.Unmarshal(decoded, &c); err != nil {
		return Cursor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.Offset < 0 {
		return Cursor{}, fmt.Errorf("%w: negative offset", ErrInvalidToken)
	}
	if c.PageSize < 1 {
		return Cursor{}, fmt.Errorf("%w: missing page size", ErrInvalidToken)
	}
	return c, nil
}
