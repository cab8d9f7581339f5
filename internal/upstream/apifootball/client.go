package apifootball

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lacerdaedaniella-eng/goalmind-backend/internal/upstream"
)

// Config controls how the API-Football client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client performs authenticated GETs against API-Football and decodes the envelope.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs an API-Football client with the provided configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		timeout:    timeout,
		httpClient: resolveHTTPClient(cfg.HTTPClient, timeout),
		now:        time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// Fetch issues one GET for path with params and returns the decoded envelope.
// The request is bound to ctx and to the client timeout.
func (c *Client) Fetch(ctx context.Context, path string, params url.Values) (upstream.Payload, error) {
	if c.apiKey == "" {
		return nil, upstream.ErrMissingCredential
	}
	path = normalizePath(path)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.buildRequest(ctx, path, params)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request %s: %w", providerName, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &upstream.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get(retryAfterHeader), c.now()),
			Remaining:  resp.Header.Get(remainingHeader),
			Message:    "api-football rate limited",
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, &upstream.StatusError{
			Provider:   providerName,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    "unexpected status: " + strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%s: read %s: %w", providerName, path, err)
	}
	if len(body) > maxBodyBytes {
		return nil, &upstream.ShapeError{Path: path, Reason: fmt.Sprintf("body exceeds %d bytes", maxBodyBytes)}
	}

	var payload upstream.Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &upstream.ShapeError{Path: path, Reason: "invalid JSON: " + err.Error()}
	}
	if payload == nil {
		return nil, &upstream.ShapeError{Path: path, Reason: "envelope is not an object"}
	}

	if messages, rateLimited := envelopeErrors(payload[errorsField]); len(messages) > 0 {
		msg := strings.Join(messages, "; ")
		if rateLimited {
			return nil, &upstream.RateLimitError{
				Provider:  providerName,
				Remaining: resp.Header.Get(remainingHeader),
				Message:   msg,
			}
		}
		return nil, &upstream.StatusError{
			Provider: providerName,
			Path:     path,
			Message:  msg,
		}
	}

	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, path string, params url.Values) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set(credentialHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")
	return req, nil
}
