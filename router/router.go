// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/round-match/cliparse"
	"github.com/danielhkuo/round-match/handlers"
	"github.com/danielhkuo/round-match/middleware"
	"github.com/danielhkuo/round-match/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	requestHandler := handlers.NewRequestHandler(st)
	debugHandler := handlers.NewDebugHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Form options
	mux.HandleFunc("GET /options", middleware.WithLogging(requestHandler.GetOptions))

	// Round requests
	mux.HandleFunc("POST /requests", middleware.WithLogging(requestHandler.CreateRequest))
	mux.HandleFunc("GET /requests", middleware.WithLogging(requestHandler.SearchRequests))

	// Debug panel, only with a key configured
	if cfg.DebugKey != "" {
		mux.HandleFunc("GET /debug/requests",
			middleware.WithLogging(middleware.WithDebugKey(cfg.DebugKey, debugHandler.GetRequests)))
		mux.HandleFunc("DELETE /debug/requests",
			middleware.WithLogging(middleware.WithDebugKey(cfg.DebugKey, debugHandler.ClearRequests)))
	} else {
		slog.Info("debug endpoints disabled (no debug key)")
	}

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("round-match API v1"))
	})

	return mux
}
