package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"airtable-proxy-go/internal/model"
)

// livenessMessage is the fixed message the liveness probe returns.
const livenessMessage = "Airtable Proxy is working!"

// LivenessBody is the GET response payload. HasAPIKey reports whether a
// non-empty credential is currently configured, without revealing it.
type LivenessBody struct {
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	HasAPIKey bool   `json:"hasApiKey"`
}

// liveness answers the GET probe with the fixed message, the current UTC
// instant, and the credential presence flag.
func (h *Handler) liveness() model.Response {
	body, _ := json.Marshal(LivenessBody{
		Message:   livenessMessage,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		HasAPIKey: h.relay.Token() != "",
	})

	return model.Response{
		StatusCode: http.StatusOK,
		Headers:    corsHeaders(),
		Body:       string(body),
	}
}
