// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package notify forwards a summary of each new round request to an external
// webhook. Delivery is best effort: failures are logged and dropped.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/round-match/models"
)

// Notifier receives newly created requests. Implementations must not block
// the caller on failure and report nothing back.
type Notifier interface {
	Notify(ctx context.Context, req models.RoundRequest)
}

// Payload is the flattened summary sent to the webhook.
type Payload struct {
	Nickname      string `json:"nickname"`
	PlayDate      string `json:"playDate"` // empty unless an exact date was given
	PreferredArea string `json:"preferredArea"`
	CourseType    string `json:"courseType"`
	Requirements  string `json:"requirements"`
}

func NewPayload(req models.RoundRequest) Payload {
	return Payload{
		Nickname:      req.Nickname,
		PlayDate:      req.PlayDateSpecified,
		PreferredArea: strings.Join(req.PreferredArea, ", "),
		CourseType:    req.CourseType,
		Requirements:  req.Requirements,
	}
}

// Webhook POSTs the Payload as JSON. No retries.
type Webhook struct {
	url    string
	client *http.Client
}

// NewWebhook returns a Webhook for url. A nil client uses http.DefaultClient.
func NewWebhook(url string, client *http.Client) *Webhook {
	if client == nil {
		client = http.DefaultClient
	}
	return &Webhook{url: url, client: client}
}

func (w *Webhook) Notify(ctx context.Context, req models.RoundRequest) {
	payload := NewPayload(req)

	body, err := json.Marshal(payload)
	if err != nil {
		slog.Error("failed to encode webhook payload", "id", req.ID, "error", err)
		return
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		slog.Error("failed to build webhook request", "id", req.ID, "error", err)
		return
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(httpReq)
	if err != nil {
		slog.Error("webhook delivery failed", "id", req.ID, "error", err)
		return
	}
	defer resp.Body.Close()
	// Drain so the connection can be reused
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("webhook rejected notification",
			"id", req.ID,
			"status", resp.StatusCode,
		)
		return
	}

	slog.Info("webhook notified", "id", req.ID, "nickname", payload.Nickname)
}

// Nop drops every notification. Used when no webhook is configured.
type Nop struct{}

func (Nop) Notify(context.Context, models.RoundRequest) {}
