// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/danielhkuo/round-match/models"
	"github.com/danielhkuo/round-match/seed"
	"github.com/danielhkuo/round-match/store"
	"github.com/danielhkuo/round-match/testutil"
)

func TestCreateRequest(t *testing.T) {
	tests := []struct {
		name           string
		modify         func(in *models.RoundRequestInput)
		rawBody        string
		expectedStatus int
	}{
		{
			name:           "valid request",
			modify:         func(in *models.RoundRequestInput) {},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "flexible date only",
			modify: func(in *models.RoundRequestInput) {
				in.PlayDateSpecified = ""
				in.PlayDateFlexible = "any weekend"
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing nickname",
			modify:         func(in *models.RoundRequestInput) { in.Nickname = "  " },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing contact",
			modify:         func(in *models.RoundRequestInput) { in.Contact = "" },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no area",
			modify:         func(in *models.RoundRequestInput) { in.PreferredArea = nil },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown area",
			modify:         func(in *models.RoundRequestInput) { in.PreferredArea = []string{"Okinawa"} },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "repeated area",
			modify: func(in *models.RoundRequestInput) {
				in.PreferredArea = []string{models.Areas[0], models.Areas[0]}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing course type",
			modify:         func(in *models.RoundRequestInput) { in.CourseType = "" },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown course type",
			modify:         func(in *models.RoundRequestInput) { in.CourseType = "links" },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "no play style",
			modify:         func(in *models.RoundRequestInput) { in.PlayStyle = []string{} },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown play style",
			modify:         func(in *models.RoundRequestInput) { in.PlayStyle = []string{"scramble"} },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad date",
			modify:         func(in *models.RoundRequestInput) { in.PlayDateSpecified = "June 1st" },
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid JSON",
			rawBody:        "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, notifier := testutil.NewTestStore(t)
			handler := NewRequestHandler(st)

			var req *http.Request
			if tt.rawBody != "" {
				req = httptest.NewRequest("POST", "/requests", strings.NewReader(tt.rawBody))
			} else {
				in := testutil.ValidInput()
				tt.modify(&in)
				req = testutil.MakeRequest("POST", "/requests", in, nil)
			}
			w := httptest.NewRecorder()

			handler.CreateRequest(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			persisted, err := st.GetPersistedOnly(req.Context())
			if err != nil {
				t.Fatalf("Failed to read persisted requests: %v", err)
			}

			if tt.expectedStatus != http.StatusCreated {
				// Rejected input never reaches the store
				if len(persisted) != 0 {
					t.Errorf("Expected nothing stored, got %d rows", len(persisted))
				}
				return
			}

			var created models.RoundRequest
			testutil.AssertJSON(t, w, &created)
			if created.ID == "" || created.CreatedAt == "" {
				t.Error("Expected id and createdAt to be assigned")
			}
			if len(persisted) != 1 || persisted[0].ID != created.ID {
				t.Errorf("Expected created request to be stored, got %+v", persisted)
			}

			st.Close()
			if got := notifier.Requests(); len(got) != 1 || got[0].ID != created.ID {
				t.Errorf("Expected one notification for %s, got %+v", created.ID, got)
			}
		})
	}
}

func TestCreateRequest_NormalizesInput(t *testing.T) {
	st, _ := testutil.NewTestStore(t)
	handler := NewRequestHandler(st)

	in := testutil.ValidInput()
	in.Nickname = "  Spaced  "
	in.HasCompanion = false
	in.CompanionNickname = "Ghost"

	w := httptest.NewRecorder()
	handler.CreateRequest(w, testutil.MakeRequest("POST", "/requests", in, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.RoundRequest
	testutil.AssertJSON(t, w, &created)

	if created.Nickname != "Spaced" {
		t.Errorf("Expected trimmed nickname, got %q", created.Nickname)
	}
	if created.CompanionNickname != "" {
		t.Errorf("Expected companion nickname dropped without a companion, got %q", created.CompanionNickname)
	}
}

func TestCreateRequest_NoStorage(t *testing.T) {
	st := store.New(nil, nil)
	defer st.Close()
	handler := NewRequestHandler(st)

	w := httptest.NewRecorder()
	handler.CreateRequest(w, testutil.MakeRequest("POST", "/requests", testutil.ValidInput(), nil))
	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}

func TestSearchRequests(t *testing.T) {
	seeds := seed.Requests()

	tests := []struct {
		name           string
		query          url.Values
		expectedStatus int
		expectedIDs    []string
	}{
		{
			name:           "no filters returns everything",
			query:          url.Values{},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"1", "2", "3", "4", "5"},
		},
		{
			name:           "area",
			query:          url.Values{"area": {"北海道"}},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"2"},
		},
		{
			name:           "shuttle and course type",
			query:          url.Values{"shuttle_service": {"true"}, "course_type": {"シーサイド"}},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"3"},
		},
		{
			name:           "date bound keeps flexible requests",
			query:          url.Values{"date_from": {"2025-06-01"}},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"1", "2", "3", "5"},
		},
		{
			name:           "companion",
			query:          url.Values{"has_companion": {"true"}},
			expectedStatus: http.StatusOK,
			expectedIDs:    []string{"2", "4"},
		},
		{
			name:           "invalid tri-state",
			query:          url.Values{"has_companion": {"sometimes"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid date",
			query:          url.Values{"date_from": {"tomorrow"}},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st, _ := testutil.NewTestStore(t)
			handler := NewRequestHandler(st)

			req := httptest.NewRequest("GET", "/requests?"+tt.query.Encode(), nil)
			w := httptest.NewRecorder()

			handler.SearchRequests(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)

			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.SearchResponse
			testutil.AssertJSON(t, w, &resp)

			if resp.Total != len(seeds) {
				t.Errorf("Expected total %d, got %d", len(seeds), resp.Total)
			}
			if resp.Matched != len(tt.expectedIDs) {
				t.Errorf("Expected matched %d, got %d", len(tt.expectedIDs), resp.Matched)
			}

			var got []string
			for _, r := range resp.Requests {
				got = append(got, r.ID)
			}
			if strings.Join(got, ",") != strings.Join(tt.expectedIDs, ",") {
				t.Errorf("Expected ids %v, got %v", tt.expectedIDs, got)
			}
		})
	}
}

func TestGetOptions(t *testing.T) {
	st, _ := testutil.NewTestStore(t)
	handler := NewRequestHandler(st)

	w := httptest.NewRecorder()
	handler.GetOptions(w, httptest.NewRequest("GET", "/options", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.OptionsResponse
	testutil.AssertJSON(t, w, &resp)

	if len(resp.Areas) != 8 {
		t.Errorf("Expected 8 areas, got %d", len(resp.Areas))
	}
	if len(resp.CourseTypes) != 7 || resp.CourseTypes[0] != models.CourseTypeUnspecified {
		t.Errorf("Expected 7 course types starting with %s, got %v", models.CourseTypeUnspecified, resp.CourseTypes)
	}
	if len(resp.PlayStyles) != 5 {
		t.Errorf("Expected 5 play styles, got %d", len(resp.PlayStyles))
	}
}
