// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	BackendMemory   = "memory"
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendValkey   = "valkey"
)

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host    string
	Port    string
	Env     string // "development", "production", "testing"
	SiteURL string

	// Browser origins allowed to call the public API cross-origin.
	CORSOrigins []string

	// Where the catalog collections are persisted.
	StorageBackend string
	DataDir        string
	SQLitePath     string

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible cache and optional persistence)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	ValkeyDB       int

	// S3-compatible object storage for uploads
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3PublicURL string

	// Admin API basic auth
	AdminUser         string
	AdminPasswordHash string
	AdminTOTPSecret   string

	// Localization
	Locales       []string
	DefaultLocale string

	// Feed and uploads
	FeedPageSize     int
	FeedDelay        time.Duration
	UploadSessionTTL time.Duration
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Returns an error if a value cannot be
// parsed or critical values are missing in production mode.
func Load() (*Config, error) {
	cfg := &Config{
		Host:    envOrDefault("APP_HOST", "0.0.0.0"),
		Port:    envOrDefault("APP_PORT", "8080"),
		Env:     envOrDefault("APP_ENV", "development"),
		SiteURL: strings.TrimRight(envOrDefault("SITE_URL", "http://localhost:8080"), "/"),

		CORSOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),

		StorageBackend: strings.ToLower(envOrDefault("STORAGE_BACKEND", BackendMemory)),
		DataDir:        envOrDefault("DATA_DIR", "data"),
		SQLitePath:     envOrDefault("SQLITE_PATH", "data/emojiverse.db"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "emojiverse"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "emojiverse"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "fsn1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "emojiverse-public"),
		S3PublicURL: os.Getenv("S3_PUBLIC_URL"),

		AdminUser:         envOrDefault("ADMIN_USER", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminTOTPSecret:   os.Getenv("ADMIN_TOTP_SECRET"),

		Locales:       splitList(envOrDefault("LOCALES", "en,es,fr")),
		DefaultLocale: envOrDefault("DEFAULT_LOCALE", "en"),
	}

	var err error
	if cfg.ValkeyDB, err = envInt("VALKEY_DB", 0); err != nil {
		return nil, err
	}
	if cfg.FeedPageSize, err = envInt("FEED_PAGE_SIZE", 8); err != nil {
		return nil, err
	}
	if cfg.FeedDelay, err = envDuration("FEED_DELAY", 0); err != nil {
		return nil, err
	}
	if cfg.UploadSessionTTL, err = envDuration("UPLOAD_SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}

	switch cfg.StorageBackend {
	case BackendMemory, BackendFile, BackendPostgres, BackendSQLite, BackendValkey:
	default:
		return nil, fmt.Errorf("STORAGE_BACKEND must be one of memory, file, postgres, sqlite, valkey (got %q)", cfg.StorageBackend)
	}
	if cfg.FeedPageSize < 1 {
		return nil, fmt.Errorf("FEED_PAGE_SIZE must be positive (got %d)", cfg.FeedPageSize)
	}
	if len(cfg.Locales) == 0 {
		return nil, fmt.Errorf("LOCALES must list at least one language")
	}

	if cfg.Env == "production" {
		if cfg.StorageBackend == BackendPostgres && cfg.DBPassword == "changeme" {
			return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
		}
		if cfg.AdminPasswordHash == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD_HASH must be set in production")
		}
	}

	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// S3Configured reports whether object storage credentials are present.
func (c *Config) S3Configured() bool {
	return c.S3AccessKey != "" && c.S3SecretKey != ""
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration like 500ms or 30m: %w", key, err)
	}
	return d, nil
}

// splitList parses a comma-separated list, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
