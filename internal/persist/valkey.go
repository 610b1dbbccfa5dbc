// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// valkeyKeyPrefix namespaces collection documents in Valkey.
const valkeyKeyPrefix = "collection:"

// Valkey stores documents as plain string values without expiry.
type Valkey struct {
	client *redis.Client
}

// NewValkey returns an adapter backed by the given client.
func NewValkey(client *redis.Client) *Valkey {
	return &Valkey{client: client}
}

// Load returns the document stored under key.
func (v *Valkey) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := v.client.Get(ctx, valkeyKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("valkey load %s: %w", key, err)
	}
	return data, nil
}

// Save overwrites the document for key.
func (v *Valkey) Save(ctx context.Context, key string, data []byte) error {
	if err := v.client.Set(ctx, valkeyKeyPrefix+key, data, 0).Err(); err != nil {
		return fmt.Errorf("valkey save %s: %w", key, err)
	}
	return nil
}
