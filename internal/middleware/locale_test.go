// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// stubMatcher supports en and es; any Accept-Language starting with es
// matches es.
type stubMatcher struct{}

func (stubMatcher) IsSupported(lang string) bool { return lang == "en" || lang == "es" }

func (stubMatcher) Match(accept string) string {
	if strings.HasPrefix(accept, "es") {
		return "es"
	}
	return "en"
}

func TestLocale(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		cookie string
		accept string
		want   string
	}{
		{name: "default", url: "/", want: "en"},
		{name: "accept-language", url: "/", accept: "es-MX,es;q=0.9", want: "es"},
		{name: "cookie beats header", url: "/", cookie: "en", accept: "es", want: "en"},
		{name: "query beats cookie", url: "/?lang=es", cookie: "en", want: "es"},
		{name: "unsupported query ignored", url: "/?lang=de", accept: "es", want: "es"},
		{name: "unsupported cookie ignored", url: "/", cookie: "xx", want: "en"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := Locale(stubMatcher{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = LocaleFromCtx(r.Context())
			}))
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookie, Value: tt.cookie})
			}
			if tt.accept != "" {
				req.Header.Set("Accept-Language", tt.accept)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if got != tt.want {
				t.Errorf("locale = %q, want %q", got, tt.want)
			}
			if rr.Header().Get("Content-Language") != tt.want {
				t.Errorf("Content-Language = %q", rr.Header().Get("Content-Language"))
			}
		})
	}
}
