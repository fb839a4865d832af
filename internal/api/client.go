// Package api is the typed client for the booking REST API. It owns request
// construction (auth, request ids, idempotency keys) and response decoding;
// it performs no validation of payloads, which is the server's job.
package api

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
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	headerRequestID      = "X-Request-Id"
	headerIdempotencyKey = "X-Idempotency-Key"

	maxResponseBytes = 4 << 20
	bodySnippetLimit = 512
)

// TokenSource supplies the bearer token attached to every request. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a fixed TokenSource, mostly for tests.
type StaticToken string

func (s StaticToken) Token() string { return string(s) }

// StatusError is returned for any non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

type Options struct {
	Timeout time.Duration
}

type Client struct {
	baseURL string
	tokens  TokenSource
	logger  *slog.Logger
	http    *http.Client
}

func NewClient(baseURL string, tokens TokenSource, logger *slog.Logger, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		logger:  logger,
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) Appointments() AppointmentsAPI { return AppointmentsAPI{c} }
func (c *Client) Services() ServicesAPI         { return ServicesAPI{c} }
func (c *Client) Slots() SlotsAPI               { return SlotsAPI{c} }
func (c *Client) Staff() StaffAPI               { return StaffAPI{c} }
func (c *Client) Customers() CustomersAPI       { return CustomersAPI{c} }
func (c *Client) Vapi() VapiAPI                 { return VapiAPI{c} }

// do issues one request. When out is non-nil the response body is decoded
// into it; a prepopulated out therefore keeps any fields the server omits,
// which is what gives updates their merge semantics.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(headerRequestID, uuid.NewString())
	if method == http.MethodPost {
		req.Header.Set(headerIdempotencyKey, uuid.NewString())
	}
	if c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("api request failed", "method", method, "path", path, "err", err)
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logger.Error("api response read failed", "method", method, "path", path, "err", err)
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		serr := &StatusError{StatusCode: resp.StatusCode, Body: snippet(raw)}
		c.logger.Error("api request failed",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"body", serr.Body,
		)
		return serr
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// listOf fetches a collection. Payloads that are not a JSON array (null, an
// object, an empty body) decode to an empty slice rather than an error; the
// API has been seen returning envelopes on bad days.
func listOf[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, query, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[T](raw)
}

func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return []T{}, nil
	}
	var out []T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func snippet(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > bodySnippetLimit {
		s = s[:bodySnippetLimit] + "..."
	}
	return s
}
