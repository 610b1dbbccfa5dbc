// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"testing"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}

	const key = "seed-test"
	t.Cleanup(func() { db.Exec("DELETE FROM collections WHERE key = $1", key) })

	if err := Seed(db, map[string][]byte{key: []byte(`["first"]`)}); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	// The second seed must not overwrite the existing document.
	if err := Seed(db, map[string][]byte{key: []byte(`["second"]`)}); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var data string
	if err := db.QueryRow("SELECT data::text FROM collections WHERE key = $1", key).Scan(&data); err != nil {
		t.Fatalf("read seeded row: %v", err)
	}
	if data != `["first"]` {
		t.Errorf("data = %s, want [\"first\"]", data)
	}
}
