package store

import (
	"context"
	"log"
	"sync"
)

// Logical keys. Each holds one whole JSON record; every write is a full
// overwrite of the prior value.
const (
	SettingsKey = "perfume-logistics-settings"
	HistoryKey  = "perfume-logistics-history"
	ProductsKey = "perfume-logistics-products"
)

// KV is the durable key-value boundary. Both methods are fallible-silent:
// Get reports absence on any underlying failure, Set swallows write errors.
type KV interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string)
}

type PostgresKV struct {
	q Querier
}

func NewPostgresKV(ctx context.Context, q Querier) (*PostgresKV, error) {
	_, err := q.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS app_state (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`)
	if err != nil {
		return nil, err
	}
	return &PostgresKV{q: q}, nil
}

func (s *PostgresKV) Get(ctx context.Context, key string) (string, bool) {
	var value string
	err := s.q.QueryRow(ctx, `SELECT value FROM app_state WHERE key = $1`, key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value, true
}

func (s *PostgresKV) Set(ctx context.Context, key, value string) {
	_, err := s.q.Exec(ctx, `
		INSERT INTO app_state (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	if err != nil {
		log.Printf("WARNING: persisting %q failed: %v", key, err)
	}
}

// MemoryKV backs non-durable runs (no database attached). State lives for
// the process lifetime only.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

func (s *MemoryKV) Get(_ context.Context, key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryKV) Set(_ context.Context, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}
