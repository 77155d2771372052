package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"BrightFeed/internal/ports"
)

// Client scores text polarity through an external inference service.
// Failures never surface to the pipeline: any transport or decode problem
// degrades to a neutral 0 score, logged at warn, so a flaky model loses
// precision rather than articles.
type Client struct {
	endpoint string
	apiKey   string
	http     *http.Client
	logger   *slog.Logger
}

var _ ports.SentimentAnalyzer = (*Client)(nil)

// NewClient creates a reusable inference client.
func NewClient(endpoint, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 15 * time.Second},
		logger:   logger,
	}
}

// Analyze returns the model's polarity for the text, clamped to [-1, 1].
// Empty input scores 0 without touching the wire.
func (c *Client) Analyze(ctx context.Context, text string) float64 {
	if text == "" {
		return 0
	}

	score, err := c.score(ctx, text)
	if err != nil {
		c.warn("sentiment scoring failed, defaulting to neutral", "error", err)
		return 0
	}

	if score < -1 {
		return -1
	}
	if score > 1 {
		return 1
	}
	return score
}

func (c *Client) score(ctx context.Context, text string) (float64, error) {
	body, err := json.Marshal(map[string]any{"text": text})
	if err != nil {
		return 0, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var payload struct {
		Score float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("decode response: %w", err)
	}

	return payload.Score, nil
}

func (c *Client) warn(msg string, args ...any) {
	if c.logger != nil {
		c.logger.Warn(msg, args...)
	}
}
