// Package slog provides logging decorators for the gpa domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"
)

// Ensure LoggingFetcher implements gpa.Fetcher.
var _ gpa.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with operational logging.
type LoggingFetcher struct {
	next   gpa.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next gpa.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Open delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Open(ctx context.Context, url string) (session gpa.PageSession, err error) {
	defer func(begin time.Time) {
		f.logger.Info("open page",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Open(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
