package state

import (
	"encoding/json"
	"fmt"

	"taskman/internal/domain"
)

// Persisted-store keys owned by the state layer. The simulated service owns
// its own "tasks" key; the task collection itself is never written from this
// side.
const (
	authKey  = "auth"
	themeKey = "theme"
)

// loadJSON reads and decodes a persisted value. An absent or malformed value
// yields the zero value; restoring state never fails.
func loadJSON[T any](store domain.KeyValueStore, key string) (T, bool) {
	var v T
	raw, found, err := store.Get(key)
	if err != nil || !found {
		return v, false
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		var zero T
		return zero, false
	}
	return v, true
}

// saveJSON encodes and writes a persisted value.
func saveJSON[T any](store domain.KeyValueStore, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}
