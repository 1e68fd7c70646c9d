package poster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultBaseURL is the public Poster API root. Both menu.* and dash.*
	// methods live under the same prefix.
	DefaultBaseURL = "https://joinposter.com/api"

	// DefaultTimeout bounds every outbound vendor call. A timeout is treated
	// the same as any other transport failure.
	DefaultTimeout = 10 * time.Second

	// maxErrorBody limits how much of a vendor error body is carried around
	// in errors and surfaced to clients.
	maxErrorBody = 400
)

// ErrMissingToken is returned by Call when no vendor API token is configured.
var ErrMissingToken = errors.New("poster: API token is not configured")

// APIError is a non-2xx response from the vendor. The body is truncated.
type APIError struct {
	Method     string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("poster: %s HTTP %d: %s", e.Method, e.StatusCode, e.Body)
}

// DecodeError is a 2xx response whose body is not valid JSON.
type DecodeError struct {
	Method string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("poster: %s: decode response: %v", e.Method, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Caller is the outbound vendor surface the services depend on.
type Caller interface {
	Call(ctx context.Context, method string, params url.Values) (json.RawMessage, error)
}

// Config holds the vendor connection settings.
type Config struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client issues GET requests against the Poster API. Every method is a remote
// procedure name appended to the base URL, with the token and parameters
// passed as query string values.
type Client struct {
	cfg    Config
	client *http.Client
	logger *slog.Logger
}

// New creates a vendor client with a bounded per-call timeout.
func New(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

// Call performs one vendor request and returns the raw JSON body. Non-2xx
// responses become *APIError, unparsable bodies become *DecodeError. There
// are no retries; each call is made exactly once.
func (c *Client) Call(ctx context.Context, method string, params url.Values) (json.RawMessage, error) {
	if c.cfg.Token == "" {
		return nil, ErrMissingToken
	}

	q := url.Values{}
	q.Set("token", c.cfg.Token)
	for key, values := range params {
		for _, v := range values {
			q.Add(key, v)
		}
	}

	endpoint := fmt.Sprintf("%s/%s?%s", c.cfg.BaseURL, method, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("poster: create request for %s: %w", method, err)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		observeRequest(method, "transport_error", time.Since(start))
		c.logger.Warn("poster request failed",
			"method", method,
			"error", err)
		return nil, fmt.Errorf("poster: %s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		observeRequest(method, "read_error", time.Since(start))
		return nil, fmt.Errorf("poster: %s: read response body: %w", method, err)
	}

	observeRequest(method, fmt.Sprintf("%d", resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{
			Method:     method,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(body), maxErrorBody),
		}
		c.logger.Warn("poster returned error status",
			"method", method,
			"status", resp.StatusCode)
		return nil, apiErr
	}

	if !json.Valid(body) {
		return nil, &DecodeError{
			Method: method,
			Err:    fmt.Errorf("invalid JSON: %s", truncate(string(body), maxErrorBody)),
		}
	}

	return json.RawMessage(body), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
