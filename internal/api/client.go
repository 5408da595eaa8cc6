package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wildmart/wildmart-go/pkg/config"
	pkgerrors "github.com/wildmart/wildmart-go/pkg/errors"
	"github.com/wildmart/wildmart-go/pkg/metrics"
	"github.com/wildmart/wildmart-go/pkg/session"
)

const (
	defaultBaseURL            = "http://localhost:8080"
	defaultTimeout            = 30 * time.Second
	errorBodyReadLimit  int64 = 4096
	headerRequestID           = "X-Request-ID"
	outcomeOK                 = "ok"
	outcomeError              = "error"
)

var errSessionRequired = errors.New("session store is required")

// Client wraps the WildMart REST API. Every call attaches the bearer token
// from the session boundary and maps failures onto the client error
// taxonomy; a 401/403 clears the session before returning.
type Client struct {
	httpClient *http.Client
	baseURL    string
	sessions   *session.Store
	metrics    *metrics.APIMetrics
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the configured API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithMetrics attaches request metrics to the client.
func WithMetrics(m *metrics.APIMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds an API client bound to the session store.
func NewClient(cfg config.APIConfig, sessions *session.Store, opts ...Option) (*Client, error) {
	if sessions == nil {
		return nil, errSessionRequired
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := &Client{
		baseURL:    strings.TrimSpace(cfg.BaseURL),
		sessions:   sessions,
		httpClient: &http.Client{Timeout: timeout},
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: timeout}
	}

	return client, nil
}

// do executes one API call: marshal, authorize, send, map the status, and
// decode into out when provided. op is the stable metric label for the
// endpoint; path may carry resource ids.
func (c *Client) do(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	token, err := c.sessions.Token()
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "no active session")
	}

	endpoint := c.buildURL(path)
	if len(query) > 0 {
		endpoint = endpoint + "?" + query.Encode()
	}

	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "marshal request body")
		}
		payload = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set(headerRequestID, uuid.NewString())
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.metrics.Observe(op, outcomeError, time.Since(started))
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, "execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.metrics.Observe(op, outcomeError, time.Since(started))
		return c.mapFailure(resp)
	}
	c.metrics.Observe(op, outcomeOK, time.Since(started))

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return pkgerrors.Wrap(pkgerrors.CodeTransport, err, "decode response")
	}
	return nil
}

// mapFailure converts a non-2xx response into a coded error. Auth failures
// clear the session so the caller can route to login.
func (c *Client) mapFailure(resp *http.Response) error {
	serverMsg := readServerMessage(resp.Body)

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		_ = c.sessions.Clear()
		code := pkgerrors.CodeUnauthorized
		if resp.StatusCode == http.StatusForbidden {
			code = pkgerrors.CodeForbidden
		}
		return pkgerrors.New(code, "session rejected by server")
	case resp.StatusCode == http.StatusNotFound:
		return pkgerrors.New(pkgerrors.CodeNotFound, "resource not found")
	case resp.StatusCode >= http.StatusBadRequest && resp.StatusCode < http.StatusInternalServerError:
		if serverMsg == "" {
			serverMsg = fmt.Sprintf("request rejected with status %d", resp.StatusCode)
		}
		return pkgerrors.New(pkgerrors.CodeBusiness, serverMsg)
	default:
		return pkgerrors.Wrap(pkgerrors.CodeInternal, fmt.Errorf("status %d: %s", resp.StatusCode, serverMsg), "server error")
	}
}

// readServerMessage pulls the error text the backend sends as
// {"error": "..."} or {"message": "..."}.
func readServerMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, errorBodyReadLimit))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return strings.TrimSpace(string(raw))
	}
	if envelope.Error != "" {
		return envelope.Error
	}
	return envelope.Message
}

func (c *Client) buildURL(path string) string {
	trimmed := strings.TrimRight(c.baseURL, "/")
	path = strings.TrimLeft(path, "/")
	return fmt.Sprintf("%s/%s", trimmed, path)
}
