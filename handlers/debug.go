// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/round-match/middleware"
	"github.com/danielhkuo/round-match/models"
	"github.com/danielhkuo/round-match/store"
)

type DebugHandler struct {
	store *store.Store
}

func NewDebugHandler(st *store.Store) *DebugHandler {
	return &DebugHandler{store: st}
}

// GetRequests handles GET /debug/requests
// Returns all, seed-only, and persisted-only views side by side
func (h *DebugHandler) GetRequests(w http.ResponseWriter, r *http.Request) {
	all, err := h.store.GetAll(r.Context())
	if err != nil {
		slog.Error("failed to load round requests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	persisted, err := h.store.GetPersistedOnly(r.Context())
	if err != nil {
		slog.Error("failed to load persisted requests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DebugResponse{
		All:       all,
		Seed:      h.store.GetSeedOnly(),
		Persisted: persisted,
	})
}

// ClearRequests handles DELETE /debug/requests
// Removes everything, seed data included; the next read reseeds
func (h *DebugHandler) ClearRequests(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context()); err != nil {
		slog.Error("failed to clear round requests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear requests")
		return
	}

	slog.Info("round requests cleared", "remote", middleware.GetClientIP(r))
	w.WriteHeader(http.StatusNoContent)
}
