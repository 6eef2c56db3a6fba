package storage

import (
	"context"
	"fmt"
	"strings"
)

// Config selects the active backend. Resolved once at startup; there is no
// runtime switching.
type Config struct {
	Driver string // "memory" or "postgres"
	DSN    string // postgres only
}

// Open resolves the storage driver to a concrete backend. The returned
// Store is handed to the service layer as an explicit dependency; nothing
// else in the process holds storage state.
func Open(ctx context.Context, cfg Config) (Store, func() error, error) {
	switch strings.ToLower(cfg.Driver) {
	case "", "memory":
		return NewInMemoryStore(), func() error { return nil }, nil
	case "postgres", "pg", "postgresql":
		if cfg.DSN == "" {
			return nil, nil, fmt.Errorf("postgres driver requires a DSN")
		}
		store, err := OpenPostgres(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}
