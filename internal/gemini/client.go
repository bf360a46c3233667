// Package gemini implements the summary provider backed by the Gemini API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/adelsonfagundes/ClareIA/internal/domain/meeting/usecases"
)

// Config configures the Gemini client.
type Config struct {
	APIKey     string
	Model      string        // default model when the request leaves it empty
	Timeout    time.Duration // per-request timeout, default 120s
	MaxRetries int           // retries after the first attempt, default 3
}

// Client generates structured JSON via the Gemini API.
type Client struct {
	cfg         Config
	httpClient  *http.Client
	backoffBase time.Duration // tests override to 1ms
}

// NewClient creates a Client, filling in defaults for unset fields.
func NewClient(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 3
	}
	return &Client{
		cfg:         cfg,
		backoffBase: time.Second,
		httpClient:  &http.Client{Timeout: cfg.Timeout},
	}
}

// GenerateStructured asks Gemini for a JSON document. Transient failures
// (rate limits, server errors) are retried up to the configured bound.
func (c *Client) GenerateStructured(ctx context.Context, req usecases.SummaryRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.cfg.Model
	}

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.backoff(attempt)
			slog.Debug("retrying Gemini request", "attempt", attempt, "backoff", backoff)
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		out, err := c.generate(ctx, model, req)
		if err == nil {
			return out, nil
		}
		if !isTransient(err) {
			return "", fmt.Errorf("generate content: %w", err)
		}
		lastErr = err
	}
	return "", fmt.Errorf("gemini: all %d retries exhausted: %w", c.cfg.MaxRetries, lastErr)
}

func (c *Client) generate(ctx context.Context, model string, req usecases.SummaryRequest) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     c.cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.httpClient,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		Temperature:       genai.Ptr(float32(req.Temperature)),
		SystemInstruction: genai.NewContentFromText(req.System, genai.RoleUser),
	}

	result, err := client.Models.GenerateContent(ctx, model, genai.Text(req.User), cfg)
	if err != nil {
		return "", err
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return text.String(), nil
}

// isTransient matches rate-limit and server errors by message, the way the
// SDK surfaces them.
func isTransient(err error) bool {
	msg := err.Error()
	for _, marker := range []string{"429", "quota", "RESOURCE_EXHAUSTED", "500", "503", "UNAVAILABLE", "deadline exceeded", "connection"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

func (c *Client) backoff(attempt int) time.Duration {
	base := c.backoffBase
	if base <= 0 {
		base = time.Second
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
	}
	return delay
}
