package main

import (
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"airtable-proxy-go/internal/client"
	"airtable-proxy-go/internal/config"
	"airtable-proxy-go/internal/handler"
	"airtable-proxy-go/internal/service"
)

// The Lambda entrypoint consumes no config file: upstream and logging
// settings come from defaults, and the credential is read from the
// airtable_key environment variable on every invocation.
func main() {
	cfg := config.Default()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	c := client.New(cfg, logger)
	relay := service.NewRelay(c, config.EnvCredential, logger)
	h := handler.New(relay, logger)

	lambda.Start(handler.APIGateway(h))
}
