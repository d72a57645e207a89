// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth guards the debug endpoints.

# Debug Keys

Debug routes (inspect and clear the store) require the X-Debug-Key header to
match the configured key:

	err := auth.ValidateDebugKey(r.Header.Get("X-Debug-Key"), cfg.DebugKey)

An empty configured key returns ErrDebugDisabled. Comparison runs over
SHA-256 digests in constant time.

GenerateDebugKey returns a random 24-byte (192-bit) key, URL-safe base64
encoded without padding:

	key, err := auth.GenerateDebugKey()
*/
package auth
