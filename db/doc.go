// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db provides the key-value backends behind the request store.

# Backends

Backend is a small string key-value interface (Get, Set, Delete).
Set always overwrites the full value.

  - MemoryBackend: map in process memory
  - FileBackend: one JSON object file, replaced atomically on write
  - SQLBackend: kv_entry table in SQLite or PostgreSQL

Open picks one from configuration:

	backend, closeFn, err := db.Open(ctx, cfg.StorageType, cfg.StorageURL)
	if err != nil {
		log.Fatal(err)
	}
	defer closeFn()

TypeNone yields a nil Backend, which the store treats as "no durable
backing" and answers reads from the seed data.

# Schema Creation

CreateSchema creates the kv_entry table:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Drivers

The package registers both SQL drivers:

  - modernc.org/sqlite as "sqlite" (default, pure Go)
  - github.com/lib/pq as "postgres"
*/
package db
