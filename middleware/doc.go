// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /requests", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# Debug Key

Guard debug routes with the configured key:

	mux.HandleFunc("DELETE /debug/requests",
		middleware.WithDebugKey(cfg.DebugKey, debugHandler.ClearRequests))

Requests without a matching X-Debug-Key header get 401.

# CORS Middleware

Enable cross-origin requests for the browser client:

	server := http.Server{
		Handler: middleware.CORS(cfg.CORSOrigins, mux),
	}

With no origins configured any origin is allowed ("*"). Otherwise only the
listed origins are echoed back. Credentials are never allowed.

Allows methods GET, POST, DELETE, OPTIONS with headers
Content-Type, Authorization, X-Debug-Key.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.RoundRequestInput
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request and access-denied logs.
*/
package middleware
