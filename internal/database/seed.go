// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed writes the given collection documents for every key that has no row
// yet. Existing collections are left untouched, so it is safe on every boot.
func Seed(db *sql.DB, docs map[string][]byte) error {
	return seed(db, `
		INSERT INTO collections (key, data)
		VALUES ($1, $2)
		ON CONFLICT (key) DO NOTHING`, docs)
}

func seed(db *sql.DB, query string, docs map[string][]byte) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed prepare: %w", err)
	}
	defer stmt.Close()

	var inserted int64
	for key, data := range docs {
		res, err := stmt.Exec(key, data)
		if err != nil {
			return fmt.Errorf("seed %s: %w", key, err)
		}
		n, _ := res.RowsAffected()
		inserted += n
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	if inserted == 0 {
		slog.Info("database already seeded, skipping")
	} else {
		slog.Info("database seeded", "collections", inserted)
	}
	return nil
}
