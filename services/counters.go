package services

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rozanashayari/daily-poetry-backend/store"
)

// getCounter reads a monotonic integer counter, treating a missing key as
// zero.
func getCounter(ctx context.Context, s store.KVStore, key string) (int, error) {
	raw, err := s.Get(ctx, key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, NewStorageError(err)
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, NewStorageError(err)
	}
	return n, nil
}

// bumpCounter increments a counter by one and returns the new value.
func bumpCounter(ctx context.Context, s store.KVStore, key string) (int, error) {
	n, err := getCounter(ctx, s, key)
	if err != nil {
		return 0, err
	}
	n++
	if err := s.Set(ctx, key, n); err != nil {
		return 0, NewStorageError(err)
	}
	return n, nil
}
