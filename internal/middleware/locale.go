// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"net/http"
)

// LocaleMatcher is the part of the translation bundle Locale needs.
type LocaleMatcher interface {
	IsSupported(lang string) bool
	Match(acceptLanguage string) string
}

// LangCookie remembers the user's explicit language choice.
const LangCookie = "lang"

// Locale resolves the request language and stores it in the context. An
// explicit ?lang= wins, then the lang cookie, then Accept-Language.
func Locale(m LocaleMatcher) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := r.URL.Query().Get("lang")
			if !m.IsSupported(lang) {
				lang = ""
				if c, err := r.Cookie(LangCookie); err == nil && m.IsSupported(c.Value) {
					lang = c.Value
				}
			}
			if lang == "" {
				lang = m.Match(r.Header.Get("Accept-Language"))
			}
			w.Header().Add("Vary", "Accept-Language")
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLocale(r.Context(), lang)))
		})
	}
}

// WithLocale returns a context carrying lang.
func WithLocale(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, localeKey, lang)
}

// LocaleFromCtx returns the resolved language, or "" outside Locale.
func LocaleFromCtx(ctx context.Context) string {
	lang, _ := ctx.Value(localeKey).(string)
	return lang
}
