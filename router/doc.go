// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Round Match API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Form options:

	GET /options - Areas, course types, play styles

Round requests:

	POST /requests - Create request
	GET  /requests - List requests, filtered by query parameters

Debug (requires X-Debug-Key, registered only when a key is configured):

	GET    /debug/requests - All, seed-only and persisted-only views
	DELETE /debug/requests - Clear storage

# Handler Initialization

	requestHandler := handlers.NewRequestHandler(st)
	debugHandler := handlers.NewDebugHandler(st)

Both handlers share the one store.
*/
package router
