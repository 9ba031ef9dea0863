// Package service implements the core relay pipeline.
//
// SECURITY NOTE: the relay is an open proxy by design. It forwards to ANY
// absolute URL the client envelope supplies, not only Airtable hosts; no
// allowlist exists. Anyone who can reach the relay can make it issue
// requests carrying the configured bearer token. Deploy it only where the
// exposure is acceptable.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"airtable-proxy-go/internal/client"
	"airtable-proxy-go/internal/config"
	"airtable-proxy-go/internal/model"
)

// ErrAPIKeyMissing is returned when the airtable_key environment variable
// is unset or empty.
var ErrAPIKeyMissing = errors.New("API key not configured")

// ErrURLRequired is returned when the client envelope lacks a url field.
var ErrURLRequired = errors.New("URL required")

// writeMethods are the upstream methods that carry the envelope body.
// The membership test is exact: the envelope method is used as sent.
var writeMethods = map[string]bool{
	"PATCH": true,
	"POST":  true,
	"PUT":   true,
}

// Relay executes the forwarding pipeline for one POST invocation.
type Relay struct {
	client *client.AirtableClient
	creds  config.CredentialSource
	logger *slog.Logger
}

// NewRelay creates a Relay. creds is called once per Forward so the token
// is re-read on every invocation.
func NewRelay(c *client.AirtableClient, creds config.CredentialSource, logger *slog.Logger) *Relay {
	return &Relay{
		client: c,
		creds:  creds,
		logger: logger.With("component", "relay"),
	}
}

// Token returns the currently configured bearer token, or empty.
func (s *Relay) Token() string {
	return s.creds()
}

// Forward runs the pipeline for one client envelope: credential check,
// envelope parse, URL check, upstream request construction, dispatch, and
// JSON re-encode of the upstream body. A missing body is treated as an
// empty envelope. Upstream 4xx/5xx are mirrored, not converted to errors.
//
// An upstream body that fails to decode as JSON is reported as a generic
// error and the upstream status is discarded. Mirroring the status with a
// fixed error body instead would be a behavior change; see DESIGN.md.
func (s *Relay) Forward(ctx context.Context, rawBody string) (*model.UpstreamResult, error) {
	token := s.creds()
	if token == "" {
		return nil, ErrAPIKeyMissing
	}

	if rawBody == "" {
		rawBody = "{}"
	}

	var env model.Envelope
	if err := json.Unmarshal([]byte(rawBody), &env); err != nil {
		return nil, fmt.Errorf("parse request body: %w", err)
	}

	if env.URL == "" {
		return nil, ErrURLRequired
	}

	method := env.Method
	if method == "" {
		method = "GET"
	}

	// The envelope body rides along only on write methods; a GET with a
	// body field still goes out body-less.
	var body []byte
	if len(env.Body) > 0 && writeMethods[method] {
		body = env.Body
	}

	s.logger.Debug("forwarding request",
		"method", method,
		"url", env.URL,
	)

	resp, err := s.client.Do(ctx, method, env.URL, token, body)
	if err != nil {
		return nil, fmt.Errorf("forward to upstream: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}
	encoded, err := json.Marshal(decoded)
	if err != nil {
		return nil, fmt.Errorf("encode upstream response: %w", err)
	}

	return &model.UpstreamResult{
		StatusCode: resp.StatusCode,
		Body:       encoded,
	}, nil
}
