// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/danielhkuo/round-match/middleware"
	"github.com/danielhkuo/round-match/models"
	"github.com/danielhkuo/round-match/search"
	"github.com/danielhkuo/round-match/store"
)

type RequestHandler struct {
	store *store.Store
}

func NewRequestHandler(st *store.Store) *RequestHandler {
	return &RequestHandler{store: st}
}

// CreateRequest handles POST /requests
func (h *RequestHandler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	var req models.RoundRequestInput
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input before touching the store
	if msg := validateInput(&req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.store.Create(r.Context(), req)
	if errors.Is(err, store.ErrStorageUnavailable) {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Storage is not available")
		return
	}
	if err != nil {
		slog.Error("failed to create round request", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create request")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, created)
}

// SearchRequests handles GET /requests
// Query: area, course_type, play_style, has_companion, shuttle_service, date_from
func (h *RequestHandler) SearchRequests(w http.ResponseWriter, r *http.Request) {
	criteria, err := search.ParseQuery(r.URL.Query())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	all, err := h.store.GetAll(r.Context())
	if err != nil {
		slog.Error("failed to load round requests", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Storage error")
		return
	}

	matched := search.Filter(all, criteria)

	slog.Debug("search evaluated",
		"active", criteria.Active(),
		"total", len(all),
		"matched", len(matched),
	)

	middleware.JSONResponse(w, http.StatusOK, models.SearchResponse{
		Requests: matched,
		Total:    len(all),
		Matched:  len(matched),
	})
}

// GetOptions handles GET /options
// Returns the fixed label sets the form and search pages offer
func (h *RequestHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.OptionsResponse{
		Areas:       models.Areas,
		CourseTypes: models.CourseTypes,
		PlayStyles:  models.PlayStyles,
	})
}

// validateInput normalizes req and returns a user-facing message for the
// first problem found, or "" when the request can be stored.
func validateInput(req *models.RoundRequestInput) string {
	req.Nickname = strings.TrimSpace(req.Nickname)
	req.Contact = strings.TrimSpace(req.Contact)
	req.PlayDateSpecified = strings.TrimSpace(req.PlayDateSpecified)
	req.PlayDateFlexible = strings.TrimSpace(req.PlayDateFlexible)
	req.CompanionNickname = strings.TrimSpace(req.CompanionNickname)

	if req.Nickname == "" || req.Contact == "" {
		return "nickname and contact are required"
	}

	if len(req.PreferredArea) == 0 {
		return "at least one preferredArea is required"
	}
	if hasDuplicates(req.PreferredArea) {
		return "preferredArea must not repeat"
	}
	for _, a := range req.PreferredArea {
		if !models.IsArea(a) {
			return "unknown preferredArea: " + a
		}
	}

	if req.CourseType == "" {
		return "courseType is required"
	}
	if !models.IsCourseType(req.CourseType) {
		return "unknown courseType: " + req.CourseType
	}

	if len(req.PlayStyle) == 0 {
		return "at least one playStyle is required"
	}
	if hasDuplicates(req.PlayStyle) {
		return "playStyle must not repeat"
	}
	for _, s := range req.PlayStyle {
		if !models.IsPlayStyle(s) {
			return "unknown playStyle: " + s
		}
	}

	if req.PlayDateSpecified != "" {
		if _, err := time.Parse(models.DateLayout, req.PlayDateSpecified); err != nil {
			return "playDateSpecified must be YYYY-MM-DD"
		}
	}

	// Only meaningful with a companion
	if !req.HasCompanion {
		req.CompanionNickname = ""
	}

	return ""
}

func hasDuplicates(labels []string) bool {
	seen := make(map[string]bool, len(labels))
	for _, l := range labels {
		if seen[l] {
			return true
		}
		seen[l] = true
	}
	return false
}
