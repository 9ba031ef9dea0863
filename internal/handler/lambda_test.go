package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func TestAPIGateway_Liveness(t *testing.T) {
	fn := APIGateway(newTestHandler("tok"))

	resp, err := fn(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})
	if err != nil {
		t.Fatalf("adapter error = %v, want nil", err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	checkHeaders(t, resp.Headers)

	var body LivenessBody
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !body.HasAPIKey {
		t.Error("hasApiKey = false, want true")
	}
}

func TestAPIGateway_NeverReturnsError(t *testing.T) {
	fn := APIGateway(newTestHandler("tok"))

	// A failing pipeline must still come back as a response descriptor.
	resp, err := fn(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Body:       `{"url": not-json`,
	})
	if err != nil {
		t.Fatalf("adapter error = %v, want nil", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}
}

func TestAPIGateway_MethodNotAllowed(t *testing.T) {
	fn := APIGateway(newTestHandler("tok"))

	resp, err := fn(context.Background(), events.APIGatewayProxyRequest{HTTPMethod: http.MethodDelete})
	if err != nil {
		t.Fatalf("adapter error = %v, want nil", err)
	}
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusMethodNotAllowed)
	}
	if resp.Body != `{"error":"Method not allowed"}` {
		t.Errorf("body = %q, want %q", resp.Body, `{"error":"Method not allowed"}`)
	}
}
