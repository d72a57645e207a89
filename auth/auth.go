// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrDebugDisabled   = errors.New("debug endpoints disabled")
	ErrInvalidDebugKey = errors.New("invalid debug key")
)

// GenerateDebugKey creates a random secret for the debug endpoints
func GenerateDebugKey() (string, error) {
	b := make([]byte, 24) // 24 bytes = 192 bits of entropy
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate debug key: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// ValidateDebugKey checks provided against the configured key.
// An empty configured key disables debug access entirely.
func ValidateDebugKey(provided, expected string) error {
	if expected == "" {
		return ErrDebugDisabled
	}
	// Compare digests so timing does not leak the key length
	p := sha256.Sum256([]byte(provided))
	e := sha256.Sum256([]byte(expected))
	if !hmac.Equal(p[:], e[:]) {
		return ErrInvalidDebugKey
	}
	return nil
}
