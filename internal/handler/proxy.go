package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"airtable-proxy-go/internal/model"
	"airtable-proxy-go/internal/service"
)

// Handler is the host-neutral entry point. Each inbound invocation maps to
// exactly one Handle call; no state outlives the call.
type Handler struct {
	relay  *service.Relay
	logger *slog.Logger
}

// New creates a Handler.
func New(relay *service.Relay, logger *slog.Logger) *Handler {
	return &Handler{
		relay:  relay,
		logger: logger.With("component", "proxy_handler"),
	}
}

// corsHeaders returns the exact header set every response carries,
// including errors and the preflight reply.
func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type, Authorization",
		"Access-Control-Allow-Methods": "GET, POST, PUT, DELETE, OPTIONS",
		"Content-Type":                 "application/json",
	}
}

// Handle dispatches one inbound request: OPTIONS answers the CORS
// preflight, GET serves the liveness probe, POST relays to the upstream,
// and anything else is rejected with 405.
func (h *Handler) Handle(ctx context.Context, in model.Request) model.Response {
	switch in.HTTPMethod {
	case http.MethodOptions:
		return model.Response{
			StatusCode: http.StatusOK,
			Headers:    corsHeaders(),
			Body:       "",
		}
	case http.MethodGet:
		return h.liveness()
	case http.MethodPost:
		res, err := h.relay.Forward(ctx, in.Body)
		if err != nil {
			return h.mapError(err)
		}
		return model.Response{
			StatusCode: res.StatusCode,
			Headers:    corsHeaders(),
			Body:       string(res.Body),
		}
	default:
		return errorResponse(http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// mapError converts a pipeline failure into its outbound response. The two
// sentinel failures get their fixed status and message; everything else
// becomes the generic 500 envelope with the error text preserved.
func (h *Handler) mapError(err error) model.Response {
	h.logger.Error("relay error", "err", h.sanitize(err.Error()))

	switch {
	case errors.Is(err, service.ErrAPIKeyMissing):
		return errorResponse(http.StatusInternalServerError, service.ErrAPIKeyMissing.Error())
	case errors.Is(err, service.ErrURLRequired):
		return errorResponse(http.StatusBadRequest, service.ErrURLRequired.Error())
	default:
		return errorResponse(http.StatusInternalServerError, h.sanitize(err.Error()))
	}
}

// sanitize redacts the bearer token from text that may reach a client or
// a log line. Error strings can embed upstream URLs and request dumps;
// the token must never travel back out.
func (h *Handler) sanitize(msg string) string {
	if token := h.relay.Token(); token != "" {
		msg = strings.ReplaceAll(msg, token, "[REDACTED]")
	}
	return msg
}

func errorResponse(status int, msg string) model.Response {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return model.Response{
		StatusCode: status,
		Headers:    corsHeaders(),
		Body:       string(body),
	}
}
