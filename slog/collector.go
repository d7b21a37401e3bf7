package slog

import (
	"context"
	"log/slog"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"
)

// Ensure LoggingCollector implements gpa.URLCollector.
var _ gpa.URLCollector = (*LoggingCollector)(nil)

// LoggingCollector wraps a URLCollector with operational logging.
type LoggingCollector struct {
	next   gpa.URLCollector
	logger *slog.Logger
}

// NewLoggingCollector creates a new LoggingCollector.
func NewLoggingCollector(next gpa.URLCollector, logger *slog.Logger) *LoggingCollector {
	return &LoggingCollector{next: next, logger: logger}
}

// Collect delegates to the wrapped collector and logs the operation.
func (c *LoggingCollector) Collect(ctx context.Context, startURL string, limit int) (urls []string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("url collection",
			"url", startURL,
			"limit", limit,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Collect(ctx, startURL, limit)
}
