// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Round Match API.

# Handler Types

Each handler is a struct holding the request store:

  - RequestHandler: create, search, and form options
  - DebugHandler: inspect and clear stored requests

Handlers are created via constructor functions:

	requestHandler := handlers.NewRequestHandler(st)
	debugHandler := handlers.NewDebugHandler(st)

# Creating Requests

	POST /requests → CreateRequest

The body is a models.RoundRequestInput. Validation runs before the store is
called and answers 400 on the first problem:

  - nickname and contact are required
  - at least one area and one play style, each from its fixed list, no repeats
  - courseType is required and must be a known label
  - playDateSpecified, when present, is YYYY-MM-DD

companionNickname is dropped when hasCompanion is false. The response is the
stored request with its id and createdAt. Webhook delivery happens in the
background and never changes the response.

# Searching

	GET /requests?area=...&course_type=...&date_from=2025-06-01

Query parameters map to search.Criteria (see search.ParseQuery). Without
parameters every request is returned.

	GET /options → GetOptions

Returns the area, course type, and play style labels in display order.

# Debug

	GET    /debug/requests → GetRequests (all, seed, persisted)
	DELETE /debug/requests → ClearRequests

Both require the X-Debug-Key header; see middleware.WithDebugKey.
*/
package handlers
