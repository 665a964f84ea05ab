// Package remote mirrors trade records to an upsert-capable HTTP endpoint.
// Mirroring is best-effort and at-most-once: failures are logged, never
// retried, and never affect the local store.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "confluence-journal/internal/errors"
	"confluence-journal/internal/models"
)

// Sink receives one trade record per upsert. The endpoint is expected to
// merge on conflicting id, so re-sending an updated trade overwrites the
// earlier mirror of it.
type Sink interface {
	Upsert(ctx context.Context, trade models.Trade) error
}

// NopSink discards every record. Used when no endpoint is configured and as
// a test double.
type NopSink struct{}

// Upsert does nothing.
func (NopSink) Upsert(context.Context, models.Trade) error {
	return nil
}

// payload is the wire format of one trade record. Field names are
// snake_case per the endpoint's schema.
type payload struct {
	ID                string   `json:"id"`
	Timestamp         int64    `json:"timestamp"`
	Date              string   `json:"date"`
	Pair              string   `json:"pair"`
	Direction         string   `json:"direction"`
	Session           string   `json:"session"`
	Notes             string   `json:"notes"`
	Risk              string   `json:"risk"`
	PnL               string   `json:"pnl"`
	Result            string   `json:"result"`
	BeforeImg         string   `json:"before_img"`
	AfterImg          string   `json:"after_img"`
	Score             int      `json:"score"`
	Level             string   `json:"level"`
	ActiveConfluences []string `json:"active_confluences"`
}

func payloadFromTrade(t models.Trade) payload {
	active := t.ActiveConfluences
	if active == nil {
		active = []string{}
	}
	return payload{
		ID:                t.ID,
		Timestamp:         t.Timestamp,
		Date:              t.Date,
		Pair:              t.Pair,
		Direction:         string(t.Direction),
		Session:           t.Session,
		Notes:             t.Notes,
		Risk:              t.Risk,
		PnL:               t.PnL,
		Result:            string(t.Result),
		BeforeImg:         t.BeforeImg,
		AfterImg:          t.AfterImg,
		Score:             t.Score,
		Level:             t.Level,
		ActiveConfluences: active,
	}
}

// HTTPSinkConfig holds the endpoint coordinates.
type HTTPSinkConfig struct {
	// URL is the full upsert endpoint, e.g.
	// https://xyz.example.co/rest/v1/trades
	URL string
	// APIKey is sent both as the apikey header and as a bearer token.
	APIKey  string
	Timeout time.Duration
}

// HTTPSink posts one record per upsert to a REST endpoint, authenticated by
// a static apikey/bearer header pair.
type HTTPSink struct {
	cfg    HTTPSinkConfig
	client *http.Client
}

// NewHTTPSink creates an HTTPSink.
func NewHTTPSink(cfg HTTPSinkConfig) (*HTTPSink, error) {
	if cfg.URL == "" || cfg.APIKey == "" {
		return nil, apperrors.ErrSinkUnavailable
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &HTTPSink{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Upsert posts the trade record. Non-2xx responses are errors; the caller
// decides what to do with them (the outbox just logs).
func (s *HTTPSink) Upsert(ctx context.Context, trade models.Trade) error {
	body, err := json.Marshal(payloadFromTrade(trade))
	if err != nil {
		return apperrors.NewSyncError(trade.ID, 0, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return apperrors.NewSyncError(trade.ID, 0, err)
	}
	req.Header.Set("apikey", s.cfg.APIKey)
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "resolution=merge-duplicates,return=representation")

	resp, err := s.client.Do(req)
	if err != nil {
		return apperrors.NewSyncError(trade.ID, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return apperrors.NewSyncError(trade.ID, resp.StatusCode,
			fmt.Errorf("endpoint rejected record: %s", string(detail)))
	}
	return nil
}
