// Package client provides the upstream HTTP client for the Airtable API.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"airtable-proxy-go/internal/config"
)

// AirtableClient sends requests to the upstream Airtable API.
type AirtableClient struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// UpstreamResponse is the fully-read upstream reply. The relay re-encodes
// the body as JSON, so it is buffered here rather than streamed.
type UpstreamResponse struct {
	StatusCode int
	Body       []byte
}

// New creates an AirtableClient with connection pooling and a bounded
// overall timeout. A timed-out call surfaces as an error from Do.
func New(cfg *config.Config, logger *slog.Logger) *AirtableClient {
	transport := &http.Transport{
		MaxIdleConns:        cfg.Upstream.IdleConnections,
		MaxIdleConnsPerHost: cfg.Upstream.IdleConnections,
		IdleConnTimeout:     90 * time.Second,
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
	}

	return &AirtableClient{
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second,
		},
		logger: logger.With("component", "airtable_client"),
	}
}

// Do executes one upstream request with the bearer token injected. Only
// the Authorization and Content-Type headers are sent; nothing from the
// inbound request is forwarded. body may be nil for body-less methods.
// The response body is read to completion before returning.
func (c *AirtableClient) Do(ctx context.Context, method, url, token string, body []byte) (*UpstreamResponse, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("upstream request",
		"method", method,
		"url", url,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read upstream response: %w", err)
	}

	return &UpstreamResponse{
		StatusCode: resp.StatusCode,
		Body:       data,
	}, nil
}
