// Package storage provides the durable key-value slot that holds the persisted CV snapshot.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Slot.Load when nothing has been saved under the key yet.
var ErrNotFound = errors.New("snapshot not found")

// Slot is a durable key-value slot. Save fully overwrites any previous value.
type Slot interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}

// Backend names a Slot implementation.
type Backend string

const (
	BackendFile     Backend = "file"
	BackendMemory   Backend = "memory"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
)

// Options selects and configures a Slot backend.
type Options struct {
	Backend     Backend
	Dir         string // file backend
	SQLitePath  string // sqlite backend
	DatabaseURL string // postgres backend
	RedisAddr   string // redis backend
}

// Open returns the Slot selected by opts. An empty backend means the file backend.
func Open(ctx context.Context, opts Options) (Slot, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileSlot(opts.Dir)
	case BackendMemory:
		return NewMemorySlot(), nil
	case BackendSQLite:
		return OpenSQLite(opts.SQLitePath)
	case BackendPostgres:
		return ConnectPostgres(ctx, opts.DatabaseURL)
	case BackendRedis:
		return ConnectRedis(ctx, opts.RedisAddr)
	default:
		return nil, &Error{Message: fmt.Sprintf("unknown storage backend %q", opts.Backend)}
	}
}

// Error represents a storage backend failure
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("storage error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
