// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the EmojiVerse catalog server.
// It loads configuration, picks the persistence backend, loads the stores,
// sets up routing, and starts the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"emojiverse/internal/cache"
	"emojiverse/internal/config"
	"emojiverse/internal/database"
	"emojiverse/internal/handlers"
	"emojiverse/internal/i18n"
	"emojiverse/internal/media"
	"emojiverse/internal/middleware"
	"emojiverse/internal/persist"
	"emojiverse/internal/router"
	"emojiverse/internal/storage"
	"emojiverse/internal/store"
)

func main() {
	// "emojiverse hash-password <password>" prints a bcrypt hash for
	// ADMIN_PASSWORD_HASH and exits.
	if len(os.Args) == 3 && os.Args[1] == "hash-password" {
		hash, err := middleware.HashPassword(os.Args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Println(hash)
		return
	}

	// A local .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "failed to read .env:", err)
		os.Exit(1)
	}

	// Structured text logger; debug output only in development.
	level := slog.LevelInfo
	if os.Getenv("APP_ENV") == "" || os.Getenv("APP_ENV") == "development" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"storage", cfg.StorageBackend,
	)

	bundle, err := i18n.LoadEmbedded(cfg.DefaultLocale, cfg.Locales)
	if err != nil {
		slog.Error("failed to load translations", "error", err)
		os.Exit(1)
	}

	// Valkey is required for the valkey backend and optional otherwise,
	// where it only backs the response cache.
	valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
	if err != nil {
		if cfg.StorageBackend == config.BackendValkey {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		slog.Warn("valkey unavailable, using in-process response cache", "error", err)
	} else {
		defer valkeyClient.Close()
	}

	adapter, db, err := openAdapter(cfg, valkeyClient)
	if err != nil {
		slog.Error("failed to open storage backend", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	// Load the catalog collections; failures fall back to the seed data.
	stores := store.New(adapter)
	stores.Load(context.Background())

	var responseCache cache.Cache
	if valkeyClient != nil {
		responseCache = cache.NewResponseCache(valkeyClient, cache.DefaultTTL)
	} else {
		responseCache = cache.NewMemory(cache.DefaultTTL)
	}

	// Connect to S3-compatible object storage (optional, uploads stay in
	// memory without it).
	var objects storage.Backend
	var served storage.Backend
	s3Client, err := storage.NewS3(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
	switch {
	case err != nil:
		slog.Error("failed to initialize S3 storage", "error", err)
		os.Exit(1)
	case s3Client != nil:
		objects = s3Client
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	default:
		mem := storage.NewMemory("/files")
		objects, served = mem, mem
		slog.Warn("s3 storage not configured, uploads are kept in memory")
	}

	// Upload sessions expire after the configured TTL; the sweeper
	// discards abandoned ones.
	uploads := media.NewManager(objects, stores.Media, cfg.UploadSessionTTL)
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go uploads.Run(sweepCtx, time.Minute)

	searchLimiter := middleware.NewRateLimiter(120, time.Minute)
	defer searchLimiter.Stop()
	adminLimiter := middleware.NewRateLimiter(300, time.Minute)
	defer adminLimiter.Stop()

	if cfg.AdminPasswordHash == "" {
		slog.Warn("ADMIN_PASSWORD_HASH not set, admin API disabled")
	}

	r := router.New(router.Options{
		Public: handlers.NewPublic(stores, bundle, responseCache, handlers.PublicOptions{
			SiteURL:      cfg.SiteURL,
			FeedPageSize: cfg.FeedPageSize,
			FeedDelay:    cfg.FeedDelay,
		}),
		Admin:             handlers.NewAdmin(stores, responseCache, uploads),
		Locale:            bundle,
		AdminUser:         cfg.AdminUser,
		AdminPasswordHash: cfg.AdminPasswordHash,
		AdminTOTPSecret:   cfg.AdminTOTPSecret,
		SearchLimiter:     searchLimiter,
		AdminLimiter:      adminLimiter,
		Objects:           served,
		CORSOrigins:       cfg.CORSOrigins,
	})

	// Create the HTTP server with sensible timeouts. WriteTimeout leaves
	// room for 50 MB uploads on slow links.
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	// Uploads nobody committed are orphans once the server is gone.
	stopSweep()
	uploads.Shutdown(ctx)

	slog.Info("server stopped gracefully")
}

// openAdapter builds the persistence adapter selected by STORAGE_BACKEND.
// For the SQL backends it also returns the connection so main can close it.
func openAdapter(cfg *config.Config, valkeyClient *redis.Client) (persist.Adapter, *sql.DB, error) {
	switch cfg.StorageBackend {
	case config.BackendFile:
		a, err := persist.NewFile(cfg.DataDir)
		return a, nil, err

	case config.BackendPostgres:
		db, err := database.Connect(cfg.DSN())
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		// Seed the built-in catalog (no-op for keys that already exist).
		docs, err := store.SeedDocuments()
		if err == nil {
			err = database.Seed(db, docs)
		}
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return persist.NewPostgres(db), db, nil

	case config.BackendSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if err := database.MigrateSQLite(db); err != nil {
			db.Close()
			return nil, nil, err
		}
		docs, err := store.SeedDocuments()
		if err == nil {
			err = database.SeedSQLite(db, docs)
		}
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return persist.NewSQLite(db), db, nil

	case config.BackendValkey:
		return persist.NewValkey(valkeyClient), nil, nil

	default:
		return persist.NewMemory(), nil, nil
	}
}
