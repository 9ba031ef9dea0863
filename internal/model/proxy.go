// Package model defines shared types for the relay.
package model

import "encoding/json"

// Request is the host-neutral inbound request descriptor. Both host
// adapters (Echo and Lambda) reduce their native request types to this.
type Request struct {
	HTTPMethod string
	Body       string
}

// Response is the host-neutral outbound response descriptor.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// Envelope is the JSON object the browser client sends in a POST body to
// describe the upstream Airtable call it wants performed. Body is kept
// opaque and forwarded verbatim.
type Envelope struct {
	URL    string          `json:"url"`
	Method string          `json:"method"`
	Body   json.RawMessage `json:"body"`
}

// UpstreamResult carries the mirrored upstream status and the re-encoded
// JSON body out of the relay pipeline.
type UpstreamResult struct {
	StatusCode int
	Body       []byte
}
