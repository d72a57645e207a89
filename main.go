// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/round-match/auth"
	"github.com/danielhkuo/round-match/cliparse"
	"github.com/danielhkuo/round-match/db"
	"github.com/danielhkuo/round-match/middleware"
	"github.com/danielhkuo/round-match/notify"
	"github.com/danielhkuo/round-match/router"
	"github.com/danielhkuo/round-match/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := cliparse.LoadDotEnv(); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	level, _ := cliparse.ParseLogLevel(cfg.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if cfg.DebugKey == cliparse.GenerateDebugKey {
		cfg.DebugKey, err = auth.GenerateDebugKey()
		if err != nil {
			slog.Error("debug key generation failed", "error", err)
			os.Exit(1)
		}
		slog.Warn("generated debug key", "key", cfg.DebugKey)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Open storage
	backend, closeBackend, err := db.Open(ctx, cfg.StorageType, cfg.StorageURL)
	if err != nil {
		slog.Error("storage open failed", "type", cfg.StorageType, "error", err)
		os.Exit(1)
	}
	defer closeBackend()

	var notifier notify.Notifier = notify.Nop{}
	if cfg.WebhookURL != "" {
		notifier = notify.NewWebhook(cfg.WebhookURL, &http.Client{Timeout: cfg.WebhookTimeout})
	}

	st := store.New(backend, notifier)
	defer st.Close()

	if err := st.Initialize(ctx); err != nil {
		slog.Error("store initialization failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(st, cfg)

	// Create server
	server := &http.Server{
		Handler:           middleware.CORS(cfg.CORSOrigins, mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Listening", "port", cfg.Port, "storage", cfg.StorageType)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		// Wait for Ctrl-C, SIGTERM, or a listener failure
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}
