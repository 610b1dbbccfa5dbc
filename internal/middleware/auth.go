// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"golang.org/x/crypto/bcrypt"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

const (
	adminKey  contextKey = "admin"
	localeKey contextKey = "locale"
)

// BasicAuth protects the admin API with HTTP basic authentication. The
// password is checked against a bcrypt hash; an empty hash disables the
// admin API entirely.
func BasicAuth(user, passwordHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if passwordHash == "" {
				writeAuthError(w, http.StatusServiceUnavailable, "admin access is not configured")
				return
			}

			u, p, ok := r.BasicAuth()
			// Always run bcrypt so a wrong user name costs the same as a
			// wrong password.
			passErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(p))
			userOK := subtle.ConstantTimeCompare([]byte(u), []byte(user)) == 1
			if !ok || !userOK || passErr != nil {
				w.Header().Set("WWW-Authenticate", `Basic realm="emojiverse admin", charset="UTF-8"`)
				writeAuthError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), adminKey, u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromCtx returns the authenticated admin user name, or "".
func AdminFromCtx(ctx context.Context) string {
	u, _ := ctx.Value(adminKey).(string)
	return u
}

// HashPassword returns the bcrypt hash to put in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
