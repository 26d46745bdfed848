package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// maxResponseBody caps how much of a response body is read. Auth responses
// are tiny; anything larger is not worth buffering.
const maxResponseBody = 64 * 1024

// Client submits login and registration forms to the backend as JSON.
// Zero value is not usable; use NewClient to create instances.
type Client struct {
	cfg Config
	// client is reused across requests for connection pooling
	client    *http.Client
	headers   map[string]string
	userAgent string
	log       *slog.Logger

	loginURL    string
	registerURL string
}

// NewClient validates the configuration and creates a transport client.
// Empty endpoint paths and a zero timeout fall back to their defaults.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}
	if cfg.RegisterPath == "" {
		cfg.RegisterPath = "/register"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	c := &Client{
		cfg: cfg,
		client: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		headers:     make(map[string]string),
		userAgent:   "authform/1.0",
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		loginURL:    joinURL(base, cfg.LoginPath),
		registerURL: joinURL(base, cfg.RegisterPath),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Login submits credentials to the login endpoint.
func (c *Client) Login(ctx context.Context, creds Credentials) (SubmissionResult, error) {
	return c.submit(ctx, c.loginURL, creds)
}

// Register submits a profile to the registration endpoint.
func (c *Client) Register(ctx context.Context, profile Profile) (SubmissionResult, error) {
	return c.submit(ctx, c.registerURL, profile)
}

// submit performs a single POST attempt. There are no retries: the user sees
// the outcome and decides whether to resubmit.
func (c *Client) submit(ctx context.Context, endpoint string, data any) (SubmissionResult, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	requestID := uuid.NewString()
	start := time.Now()

	// Layer the time budget on top of the parent context to respect both.
	reqCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return SubmissionResult{}, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		if reqCtx.Err() == context.DeadlineExceeded {
			c.log.WarnContext(ctx, "auth request timed out",
				slog.String("endpoint", endpoint),
				slog.String("request_id", requestID),
				slog.Duration("duration", duration),
			)
			return SubmissionResult{RequestID: requestID, Duration: duration}, fmt.Errorf("%w: %w", ErrTimeout, err)
		}

		c.log.WarnContext(ctx, "auth request failed",
			slog.String("endpoint", endpoint),
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.Any("error", err),
		)
		return SubmissionResult{RequestID: requestID, Duration: duration}, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	result := SubmissionResult{
		StatusCode: resp.StatusCode,
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
		RequestID:  requestID,
		Duration:   duration,
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	result.Payload = parsePayload(raw)

	c.log.DebugContext(ctx, "auth request completed",
		slog.String("endpoint", endpoint),
		slog.String("request_id", requestID),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration),
	)

	return result, nil
}

// parsePayload decodes the recognized body shape. Anything else, including
// an empty body, yields nil; an unreadable body is never a hard failure.
func parsePayload(raw []byte) *Payload {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil
	}

	return &payload
}

func parseBaseURL(rawURL string) (*url.URL, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("%w: URL is required", ErrInvalidBaseURL)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidBaseURL)
	}

	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}

	return u, nil
}

func joinURL(base *url.URL, path string) string {
	trimmed := strings.TrimSuffix(base.String(), "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return trimmed + path
}
