// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
)

func TestTOTP(t *testing.T) {
	key, err := totp.Generate(totp.GenerateOpts{Issuer: "EmojiVerse", AccountName: "admin"})
	if err != nil {
		t.Fatal(err)
	}
	valid, err := totp.GenerateCode(key.Secret(), time.Now())
	if err != nil {
		t.Fatal(err)
	}

	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name   string
		secret string
		code   string
		want   int
	}{
		{"disabled", "", "", http.StatusOK},
		{"missing code", key.Secret(), "", http.StatusUnauthorized},
		{"wrong code", key.Secret(), "000000x", http.StatusUnauthorized},
		{"valid code", key.Secret(), valid, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/api/emojis", nil)
			if tt.code != "" {
				req.Header.Set(OTPHeader, tt.code)
			}
			rr := httptest.NewRecorder()
			TOTP(tt.secret)(ok).ServeHTTP(rr, req)
			if rr.Code != tt.want {
				t.Errorf("status = %d, want %d", rr.Code, tt.want)
			}
		})
	}
}
