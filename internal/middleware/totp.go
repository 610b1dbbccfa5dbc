// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"strings"

	"github.com/pquerna/otp/totp"
)

// OTPHeader carries the admin's current one-time code.
const OTPHeader = "X-Admin-OTP"

// TOTP requires a valid time-based one-time code on every request once a
// secret is configured. With an empty secret it passes requests through.
// Must run after BasicAuth.
func TOTP(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			code := strings.TrimSpace(r.Header.Get(OTPHeader))
			if code == "" {
				writeAuthError(w, http.StatusUnauthorized, "one-time code required")
				return
			}
			if !totp.Validate(code, secret) {
				writeAuthError(w, http.StatusUnauthorized, "invalid one-time code")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
