// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/round-match/cliparse"
	"github.com/danielhkuo/round-match/db"
	"github.com/danielhkuo/round-match/models"
	"github.com/danielhkuo/round-match/store"
	_ "modernc.org/sqlite"
)

// TestDebugKey is the debug key in GetTestConfig
const TestDebugKey = "test-debug-key"

// SetupTestDB opens a private in-memory SQLite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Each connection to :memory: is a separate database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		StorageType:    db.TypeSQLite,
		StorageURL:     ":memory:",
		WebhookTimeout: time.Second,
		DebugKey:       TestDebugKey,
		LogLevel:       "info",
	}
}

// RecordingNotifier keeps every notification it receives
type RecordingNotifier struct {
	mu       sync.Mutex
	Received []models.RoundRequest
}

func (n *RecordingNotifier) Notify(_ context.Context, req models.RoundRequest) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Received = append(n.Received, req)
}

// Requests returns a copy of the notifications received so far
func (n *RecordingNotifier) Requests() []models.RoundRequest {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.RoundRequest(nil), n.Received...)
}

// NewTestStore builds a store over a fresh SQLite database with a recording
// notifier. The store is closed when the test ends.
func NewTestStore(t *testing.T) (*store.Store, *RecordingNotifier) {
	t.Helper()

	conn := SetupTestDB(t)
	n := &RecordingNotifier{}
	st := store.New(db.NewSQLBackend(conn, db.TypeSQLite), n)
	t.Cleanup(st.Close)

	return st, n
}

// ValidInput returns a round request body that passes validation
func ValidInput() models.RoundRequestInput {
	return models.RoundRequestInput{
		Nickname:          "TestGolfer",
		PlayDateSpecified: "2025-06-20",
		PreferredArea:     []string{models.Areas[0]},
		CourseType:        models.CourseTypes[1],
		HasCompanion:      false,
		PlayStyle:         []string{models.PlayStyles[0], models.PlayStyles[1]},
		ShuttleService:    true,
		Requirements:      "Looking forward to it",
		Contact:           "golfer@example.com",
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
