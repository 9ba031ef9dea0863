package handler

import (
	"context"

	"github.com/aws/aws-lambda-go/events"

	"airtable-proxy-go/internal/model"
)

// APIGateway adapts the handler to the Lambda proxy integration contract
// used by API Gateway and Netlify function hosts. The descriptor types
// map field-for-field, and no failure is ever re-raised to the host: every
// outcome is an APIGatewayProxyResponse.
func APIGateway(h *Handler) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		out := h.Handle(ctx, model.Request{
			HTTPMethod: req.HTTPMethod,
			Body:       req.Body,
		})

		return events.APIGatewayProxyResponse{
			StatusCode: out.StatusCode,
			Headers:    out.Headers,
			Body:       out.Body,
		}, nil
	}
}
