package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"time"
)

// DefaultBaseURL is the production OpenAI API endpoint.
const DefaultBaseURL = "https://api.openai.com/v1"

// Config configures the OpenAI HTTP client.
type Config struct {
	APIKey     string
	BaseURL    string        // default DefaultBaseURL
	Timeout    time.Duration // per-request timeout, default 120s
	MaxRetries int           // retries after the first attempt, default 3
}

// Client calls the OpenAI transcription and chat-completion endpoints. It
// performs at most one request at a time; retries rebuild the request from
// scratch, nothing is cached between attempts.
type Client struct {
	cfg         Config
	httpClient  *http.Client
	backoffBase time.Duration // default time.Second; tests override to 1ms
}

// NewClient creates a Client, filling in defaults for unset fields.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
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

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openai API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// retryableError wraps errors that should trigger another attempt.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string { return e.err.Error() }
func (e *retryableError) Unwrap() error { return e.err }

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	_, ok := err.(*retryableError)
	return ok
}

// withRetry runs fn up to MaxRetries+1 times. Only transient failures
// (network errors, timeouts, 5xx, 429) are retried; everything else
// surfaces immediately.
func (c *Client) withRetry(ctx context.Context, op string, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.backoff(attempt)
			slog.Debug("retrying request", "operation", op, "attempt", attempt, "backoff", backoff)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}

		err := fn()
		if err == nil {
			return nil
		}
		if !isRetryable(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("%s: all %d retries exhausted: %w", op, c.cfg.MaxRetries, lastErr)
}

// backoff returns exponential backoff duration: base * 2^(attempt-1) + jitter.
func (c *Client) backoff(attempt int) time.Duration {
	base := c.backoffBase
	if base <= 0 {
		base = time.Second
	}
	delay := base
	for i := 1; i < attempt; i++ {
		delay *= 2
	}
	jitter := time.Duration(rand.Int63n(int64(delay/4) + 1))
	return delay + jitter
}

// errorBody matches the standard OpenAI error envelope.
type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// responseError converts a non-2xx response into an *APIError, wrapped as
// retryable for server errors and rate limits.
func responseError(statusCode int, body []byte) error {
	msg := string(body)
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		msg = parsed.Error.Message
	}
	if len(msg) > 300 {
		msg = msg[:300] + "..."
	}

	apiErr := &APIError{StatusCode: statusCode, Message: msg}
	if statusCode >= 500 || statusCode == http.StatusTooManyRequests {
		return &retryableError{err: apiErr}
	}
	return apiErr
}
