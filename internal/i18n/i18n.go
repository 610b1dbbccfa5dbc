// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package i18n resolves translation keys with a selected locale, then the
// fallback locale, then the raw key.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"emojiverse/internal/models"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

// Bundle holds the translation tables of every supported locale.
type Bundle struct {
	dict      map[string]map[string]string
	fallback  string
	supported []string
	matcher   language.Matcher
}

// LoadEmbedded loads the locale files compiled into the binary.
func LoadEmbedded(fallback string, supported []string) (*Bundle, error) {
	sub, err := fs.Sub(embeddedLocales, "locales")
	if err != nil {
		return nil, err
	}
	return Load(sub, fallback, supported)
}

// Load reads <locale>.json for every supported locale from fsys. Only the
// fallback locale is required to exist.
func Load(fsys fs.FS, fallback string, supported []string) (*Bundle, error) {
	if len(supported) == 0 {
		supported = []string{fallback}
	}
	b := &Bundle{
		dict:     map[string]map[string]string{},
		fallback: fallback,
	}

	seen := map[string]bool{}
	for _, l := range append([]string{fallback}, supported...) {
		if seen[l] {
			continue
		}
		seen[l] = true
		b.supported = append(b.supported, l)

		raw, err := fs.ReadFile(fsys, l+".json")
		if err != nil {
			if l == fallback {
				return nil, fmt.Errorf("load locale %s: %w", l, err)
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", l, err)
		}
		b.dict[l] = m
	}

	// The fallback comes first so the matcher prefers it on ties.
	tags := make([]language.Tag, 0, len(b.supported))
	for _, l := range b.supported {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", l, err)
		}
		tags = append(tags, tag)
	}
	b.matcher = language.NewMatcher(tags)
	return b, nil
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// Supported returns the supported locales, sorted.
func (b *Bundle) Supported() []string {
	out := append([]string(nil), b.supported...)
	sort.Strings(out)
	return out
}

// IsSupported reports whether lang is a supported locale.
func (b *Bundle) IsSupported(lang string) bool {
	for _, l := range b.supported {
		if l == lang {
			return true
		}
	}
	return false
}

// T returns the translation for key in lang, falling back to the default
// locale and finally to the key itself. {name} placeholders are replaced
// from params.
func (b *Bundle) T(lang, key string, params map[string]string) string {
	return interpolate(b.lookup(lang, key), params)
}

// Resolve returns literal texts unchanged and translates keys.
func (b *Bundle) Resolve(lang string, t models.Text) string {
	if !t.IsKey() {
		return t.Value
	}
	return b.lookup(lang, t.Value)
}

// Match picks the best supported locale for an Accept-Language header or a
// single tag such as "es-MX".
func (b *Bundle) Match(accept string) string {
	accept = strings.TrimSpace(accept)
	if accept == "" {
		return b.fallback
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return b.fallback
	}
	_, idx, conf := b.matcher.Match(tags...)
	if conf == language.No {
		return b.fallback
	}
	return b.supported[idx]
}

func (b *Bundle) lookup(lang, key string) string {
	if lang != "" {
		if m, ok := b.dict[lang]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	if m, ok := b.dict[b.fallback]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// interpolate replaces {name} placeholders. Unknown placeholders are kept.
func interpolate(s string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(s, "{") {
		return s
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(s)
}
