// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/goleak"

	"github.com/danielhkuo/round-match/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func sampleRequest() models.RoundRequest {
	return models.RoundRequest{
		ID:                "abc",
		Nickname:          "Taro",
		PlayDateSpecified: "2025-06-01",
		PreferredArea:     []string{"北海道", "北陸（富山、石川、福井）"},
		CourseType:        "林間",
		Requirements:      "beginners welcome",
		Contact:           "taro@example.com",
	}
}

func TestNewPayload(t *testing.T) {
	p := NewPayload(sampleRequest())

	if p.Nickname != "Taro" {
		t.Errorf("expected nickname Taro, got %q", p.Nickname)
	}
	if p.PlayDate != "2025-06-01" {
		t.Errorf("expected playDate 2025-06-01, got %q", p.PlayDate)
	}
	if p.PreferredArea != "北海道, 北陸（富山、石川、福井）" {
		t.Errorf("unexpected preferredArea %q", p.PreferredArea)
	}
	if p.CourseType != "林間" || p.Requirements != "beginners welcome" {
		t.Errorf("unexpected payload %+v", p)
	}
}

func TestNewPayload_FlexibleDate(t *testing.T) {
	req := sampleRequest()
	req.PlayDateSpecified = ""
	req.PlayDateFlexible = "weekends in June"

	if p := NewPayload(req); p.PlayDate != "" {
		t.Errorf("expected empty playDate for flexible-only request, got %q", p.PlayDate)
	}
}

func TestWebhook_Notify(t *testing.T) {
	var got map[string]string
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	NewWebhook(srv.URL, srv.Client()).Notify(context.Background(), sampleRequest())

	if contentType != "application/json" {
		t.Errorf("expected application/json, got %q", contentType)
	}

	want := map[string]string{
		"nickname":      "Taro",
		"playDate":      "2025-06-01",
		"preferredArea": "北海道, 北陸（富山、石川、福井）",
		"courseType":    "林間",
		"requirements":  "beginners welcome",
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d fields, got %v", len(want), got)
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("field %s: expected %q, got %q", k, v, got[k])
		}
	}
}

func TestWebhook_FailuresAreSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	// Neither call may panic or block.
	NewWebhook(srv.URL, srv.Client()).Notify(context.Background(), sampleRequest())

	closed := httptest.NewServer(http.NotFoundHandler())
	url := closed.URL
	closed.Close()
	NewWebhook(url, nil).Notify(context.Background(), sampleRequest())
}

func TestNop(t *testing.T) {
	var n Notifier = Nop{}
	n.Notify(context.Background(), sampleRequest())
}
