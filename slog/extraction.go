package slog

import (
	"context"
	"log/slog"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"
)

// Ensure LoggingExtractionClient implements gpa.ExtractionClient.
var _ gpa.ExtractionClient = (*LoggingExtractionClient)(nil)

// LoggingExtractionClient wraps an ExtractionClient with operational
// logging. Prompts and responses are logged by size only; their content can
// contain entire page bodies.
type LoggingExtractionClient struct {
	next   gpa.ExtractionClient
	logger *slog.Logger
}

// NewLoggingExtractionClient creates a new LoggingExtractionClient.
func NewLoggingExtractionClient(next gpa.ExtractionClient, logger *slog.Logger) *LoggingExtractionClient {
	return &LoggingExtractionClient{next: next, logger: logger}
}

// Generate delegates to the wrapped client and logs the operation.
func (c *LoggingExtractionClient) Generate(ctx context.Context, prompt string) (response string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("generate",
			"prompt_bytes", len(prompt),
			"response_bytes", len(response),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Generate(ctx, prompt)
}
