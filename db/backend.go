// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Storage types accepted by Open
const (
	TypeNone     = "none"
	TypeMemory   = "memory"
	TypeFile     = "file"
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

var ErrUnknownStorageType = errors.New("unknown storage type")

// Backend is a durable string key-value store.
// Set overwrites the whole value; there are no partial updates.
type Backend interface {
	// Get returns ok=false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Delete is a no-op for absent keys.
	Delete(ctx context.Context, key string) error
}

// Open builds the backend for storageType. url is a file path for "file" and a
// DSN for "sqlite" and "postgres"; it is ignored otherwise. TypeNone returns a
// nil Backend, meaning no durable backing is available.
// The returned close func is never nil.
func Open(ctx context.Context, storageType, url string) (Backend, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(storageType) {
	case TypeNone:
		return nil, noop, nil
	case TypeMemory:
		return NewMemoryBackend(), noop, nil
	case TypeFile:
		if url == "" {
			return nil, noop, errors.New("file storage requires a path")
		}
		return NewFileBackend(url), noop, nil
	case TypeSQLite, TypePostgres:
		driver := strings.ToLower(storageType)
		conn, err := sql.Open(driver, url)
		if err != nil {
			return nil, noop, fmt.Errorf("open %s: %w", driver, err)
		}
		if driver == TypeSQLite {
			// SQLite allows a single writer.
			conn.SetMaxOpenConns(1)
		}
		if err := conn.PingContext(ctx); err != nil {
			conn.Close()
			return nil, noop, fmt.Errorf("ping %s: %w", driver, err)
		}
		if err := CreateSchema(ctx, conn); err != nil {
			conn.Close()
			return nil, noop, err
		}
		slog.Info("database schema ready", "driver", driver)
		return NewSQLBackend(conn, driver), conn.Close, nil
	}

	return nil, noop, fmt.Errorf("%w: %q", ErrUnknownStorageType, storageType)
}
