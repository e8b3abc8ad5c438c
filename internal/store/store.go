package store

import (
	"context"
	"encoding/json"
)

// Load returns the persisted value for key, or fallback when the key is
// absent or the stored payload does not parse. Corruption is treated
// identically to absence; no error surfaces to the caller.
func Load[T any](ctx context.Context, kv KV, key string, fallback T) T {
	raw, ok := kv.Get(ctx, key)
	if !ok {
		return fallback
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallback
	}
	return v
}

// Save overwrites the record under key. Failures are swallowed: settings,
// history, and products are best-effort conveniences, not systems of record.
func Save[T any](ctx context.Context, kv KV, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	kv.Set(ctx, key, string(raw))
}
