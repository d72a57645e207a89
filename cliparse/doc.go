// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadDotEnv(); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - StorageType: none, memory, file, sqlite, postgres (default: sqlite)
  - StorageURL: File path or DSN (default: file:round-match.db)
  - WebhookURL: New request webhook (optional)
  - WebhookTimeout: Webhook HTTP timeout (default: 10s)
  - DebugKey: Enables the debug routes (optional)
  - LogLevel: slog level name (default: info)
  - CORSOrigins: Allowed browser origins (default: any)

STORAGE_URL defaults by storage type: file:round-match.db for sqlite,
round-match.json for file. postgres has no default.

# Sources

Environment variables are read with caarlos0/env, then flags override them:

	PORT            → -p
	STORAGE_TYPE    → -t
	STORAGE_URL     → -d
	WEBHOOK_URL     → -webhook
	WEBHOOK_TIMEOUT → -webhook-timeout
	DEBUG_KEY       → -debug-key
	LOG_LEVEL       → -log-level
	CORS_ORIGINS    → -cors-origins (comma-separated)

LoadDotEnv fills unset variables from a .env file.

-h prints the flag usage and returns flag.ErrHelp.

# Validation

ParseFlags returns an error when:

  - the port is outside 1-65535
  - the storage type is unknown
  - postgres has no STORAGE_URL
  - the webhook timeout is not positive
  - the log level is unknown
*/
package cliparse
