// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// EmojiVerse service. It organizes routes into the public API, the
// server-rendered pages and the admin API, each with its own middleware.
package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"emojiverse/internal/handlers"
	"emojiverse/internal/middleware"
	"emojiverse/internal/storage"
)

// Options carries the handler groups and the auth and locale settings.
type Options struct {
	Public *handlers.Public
	Admin  *handlers.Admin
	Locale middleware.LocaleMatcher

	AdminUser         string
	AdminPasswordHash string
	// AdminTOTPSecret, when set, also requires a one-time code on every
	// admin request except the setup endpoint.
	AdminTOTPSecret string

	// SearchLimiter throttles search and feed requests per client.
	SearchLimiter *middleware.RateLimiter
	// AdminLimiter throttles admin requests per client, ahead of the
	// bcrypt check.
	AdminLimiter *middleware.RateLimiter

	// Objects, when set, is served under /files/ for backends without
	// their own public URL.
	Objects storage.Backend

	// CORSOrigins lists browser origins allowed to read the public API.
	// Empty disables cross-origin access.
	CORSOrigins []string
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(o Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(chimw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	r.Use(chimw.Timeout(30 * time.Second))

	pub := o.Public
	r.Get("/health", pub.Health)
	r.Get("/sitemap.xml", pub.Sitemap)
	r.Get("/ads.txt", pub.AdsTxt)
	if o.Objects != nil {
		r.Get("/files/*", handlers.Objects(o.Objects))
	}

	// Server-rendered CMS pages.
	r.With(middleware.Locale(o.Locale)).Get("/p/{slug}", pub.PageHTML)

	// Public JSON API.
	r.Route("/api", func(r chi.Router) {
		if len(o.CORSOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: o.CORSOrigins,
				AllowedMethods: []string{"GET", "OPTIONS"},
				AllowedHeaders: []string{"Accept", "Accept-Language", "Content-Type"},
				ExposedHeaders: []string{"Content-Language"},
				MaxAge:         300,
			}))
		}
		r.Use(middleware.Locale(o.Locale))

		r.Get("/categories", pub.Categories)
		r.Get("/emojis", pub.Emojis)
		r.Get("/emojis/{id}", pub.Emoji)
		r.Get("/emojis/{id}/related", pub.Related)
		r.Get("/emojis/{id}/files", pub.EmojiFiles)
		r.Get("/files", pub.Files)
		r.Get("/pages/{slug}", pub.PageJSON)
		r.Get("/footer", pub.Footer)
		r.Get("/settings", pub.Settings)

		r.Group(func(r chi.Router) {
			if o.SearchLimiter != nil {
				r.Use(o.SearchLimiter.Middleware)
			}
			r.Get("/search", pub.Search)
			r.Get("/feed", pub.Feed)
		})
	})

	// Admin API, basic auth.
	adm := o.Admin
	r.Route("/admin/api", func(r chi.Router) {
		r.Use(middleware.NoStore)
		if o.AdminLimiter != nil {
			r.Use(o.AdminLimiter.Middleware)
		}
		r.Use(middleware.BasicAuth(o.AdminUser, o.AdminPasswordHash))

		r.Get("/2fa/setup", adm.TOTPSetup)

		r.Group(func(r chi.Router) {
			r.Use(middleware.TOTP(o.AdminTOTPSecret))

			r.Route("/emojis", func(r chi.Router) {
				r.Get("/", adm.EmojiList)
				r.Post("/", adm.EmojiCreate)
				r.Put("/{id}", adm.EmojiUpdate)
				r.Delete("/{id}", adm.EmojiDelete)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", adm.CategoryList)
				r.Post("/", adm.CategoryCreate)
				r.Put("/{id}", adm.CategoryUpdate)
				r.Delete("/{id}", adm.CategoryDelete)
			})

			r.Route("/pages", func(r chi.Router) {
				r.Get("/", adm.PageList)
				r.Post("/", adm.PageCreate)
				r.Put("/{id}", adm.PageUpdate)
				r.Delete("/{id}", adm.PageDelete)
			})

			r.Put("/footer", adm.FooterUpdate)
			r.Get("/settings", adm.SettingsGet)
			r.Put("/settings", adm.SettingsUpdate)
			r.Post("/settings/reset", adm.SettingsReset)

			r.Route("/uploads", func(r chi.Router) {
				r.Post("/", adm.UploadOpen)
				r.Post("/{sid}/files", adm.UploadFile)
				r.Delete("/{sid}/files/{hid}", adm.UploadRelease)
				r.Post("/{sid}/commit", adm.UploadCommit)
				r.Delete("/{sid}", adm.UploadDiscard)
			})

			r.Get("/media", adm.MediaList)
			r.Delete("/media/{id}", adm.MediaDelete)
		})
	})

	return r
}
