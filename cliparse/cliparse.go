// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port           int           `env:"PORT" envDefault:"3318"`
	StorageType    string        `env:"STORAGE_TYPE" envDefault:"sqlite"`
	StorageURL     string        `env:"STORAGE_URL"`
	WebhookURL     string        `env:"WEBHOOK_URL"`
	WebhookTimeout time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"10s"`
	DebugKey       string        `env:"DEBUG_KEY"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigins    []string      `env:"CORS_ORIGINS" envSeparator:","`
}

// GenerateDebugKey as DEBUG_KEY asks main to create a random key at startup.
const GenerateDebugKey = "generate"

var storageTypes = []string{"none", "memory", "file", "sqlite", "postgres"}

// Storage URLs used when STORAGE_URL is unset. postgres has none.
var defaultStorageURLs = map[string]string{
	"file":   "round-match.json",
	"sqlite": "file:round-match.db",
}

// usageOutput receives flag errors and -h output.
var usageOutput io.Writer = os.Stderr

// ParseFlags reads the environment, then lets flags override it.
// Call LoadDotEnv first to pick up a .env file.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	// Environment first; its values become the flag defaults
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("round-match", flag.ContinueOnError)
	fs.SetOutput(usageOutput)

	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.StorageType, "t", cfg.StorageType, "Storage type (none, memory, file, sqlite, postgres)")
	fs.StringVar(&cfg.StorageURL, "d", cfg.StorageURL, "Storage URL (file path or database DSN)")
	fs.StringVar(&cfg.WebhookURL, "webhook", cfg.WebhookURL, "Webhook URL notified on new requests")
	fs.DurationVar(&cfg.WebhookTimeout, "webhook-timeout", cfg.WebhookTimeout, "Webhook HTTP timeout")
	fs.StringVar(&cfg.DebugKey, "debug-key", cfg.DebugKey, "Debug endpoint key (prefer env)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	fs.Func("cors-origins", "Comma-separated allowed CORS origins (default any)", func(v string) error {
		cfg.CORSOrigins = splitList(v)
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, errors.New("invalid port")
	}

	cfg.StorageType = strings.ToLower(cfg.StorageType)
	if !validStorageType(cfg.StorageType) {
		return Config{}, fmt.Errorf("storage type must be one of: %s", strings.Join(storageTypes, ", "))
	}
	if cfg.StorageURL == "" {
		cfg.StorageURL = defaultStorageURLs[cfg.StorageType]
	}
	if cfg.StorageURL == "" && cfg.StorageType == "postgres" {
		return Config{}, errors.New("storage URL required for postgres (use -d or STORAGE_URL env)")
	}

	if cfg.WebhookTimeout <= 0 {
		return Config{}, errors.New("webhook timeout must be positive")
	}

	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseLogLevel maps a level name to slog.Level
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}

func splitList(v string) []string {
	var out []string
	for _, item := range strings.Split(v, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func validStorageType(t string) bool {
	for _, s := range storageTypes {
		if s == t {
			return true
		}
	}
	return false
}
