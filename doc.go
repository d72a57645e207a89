// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Round Match API server.

Round Match pairs golfers looking for playing partners. Players post a round
request (date, area, course type, companion, play style, shuttle, contact)
and browse other requests with filters.

# Starting the Server

With no configuration the server listens on 3318 and stores requests in a
local SQLite file:

	go run .

Or with flags:

	go run . -p 8080 -t postgres -d "postgres://..."

A .env file in the working directory is loaded first; real environment
variables win over it.

# Configuration

  - PORT (-p): Server port (default: 3318)
  - STORAGE_TYPE (-t): none, memory, file, sqlite, postgres (default: sqlite)
  - STORAGE_URL (-d): File path or database DSN (default: file:round-match.db
    for sqlite, round-match.json for file; required for postgres)
  - WEBHOOK_URL (-webhook): Notified on every new request (optional)
  - WEBHOOK_TIMEOUT (-webhook-timeout): Webhook HTTP timeout (default: 10s)
  - DEBUG_KEY (-debug-key): Enables /debug routes; "generate" picks one
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)
  - CORS_ORIGINS (-cors-origins): Allowed browser origins (default: any)

# Architecture

  - store: Request store, seeding and persistence
  - search: Filter engine
  - db: Key-value backends (memory, file, SQLite, PostgreSQL)
  - notify: Webhook notifications
  - seed: Embedded mock requests
  - handlers: HTTP request handlers (requests, options, debug)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, debug key, JSON helpers
  - models: Request/response types and enumerations
  - auth: Debug key generation and validation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
