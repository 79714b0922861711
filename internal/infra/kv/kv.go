// Package kv provides durable key-value stores for small JSON documents.
package kv

import (
	"context"

	"github.com/cockroachdb/errors"
)

// ErrNotFound is returned by Get when the key has no value.
var ErrNotFound = errors.New("key not found")

// Store is a key-value store.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Backend types.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config selects and configures a backend.
type Config struct {
	Backend string // file, sqlite or postgres
	Path    string // File or database path (file, sqlite)
	DSN     string // Connection string (postgres)
}

// Open opens the configured store.
func Open(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Backend {
	case BackendFile, "":
		return OpenFile(cfg.Path)
	case BackendSQLite:
		return OpenSQLite(ctx, cfg.Path)
	case BackendPostgres:
		return OpenPostgres(ctx, cfg.DSN)
	default:
		return nil, errors.Newf("unknown store backend: %s", cfg.Backend)
	}
}
