// Package store provides the key-value persistence layer behind the poem
// collection, the daily schedule and the analytics counters. Values are
// stored as JSON documents; drivers exist for Redis, PostgreSQL and an
// in-memory map.
package store

import (
	"context"
	"encoding/json"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key does not exist.
var ErrKeyNotFound = errors.New("key not found")

// KVStore is the opaque get/set-by-key contract every driver implements.
type KVStore interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
