package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/taimg1/game-platform-analyzer/mock"
	gpaslog "github.com/taimg1/game-platform-analyzer/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := gpaslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://store.example.com/app/1")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "url=https://store.example.com/app/1")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("network error")
			},
		}

		fetcher := gpaslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://store.example.com/app/1")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "fetch")
		assert.Contains(t, output, "err=\"network error\"")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	t.Run("delegates to inner fetcher", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		closeCalled := false
		inner := &mock.Fetcher{
			CloseFn: func() error {
				closeCalled = true
				return nil
			},
		}

		fetcher := gpaslog.NewLoggingFetcher(inner, logger)
		err := fetcher.Close()

		require.NoError(t, err)
		assert.True(t, closeCalled)
	})
}

func TestLoggingCollector_Collect(t *testing.T) {
	t.Parallel()

	t.Run("logs collection count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.URLCollector{
			CollectFn: func(ctx context.Context, startURL string, limit int) ([]string, error) {
				return []string{"https://store.example.com/app/1", "https://store.example.com/app/2"}, nil
			},
		}

		collector := gpaslog.NewLoggingCollector(inner, logger)
		urls, err := collector.Collect(context.Background(), "https://store.example.com/search", 10)

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "url collection")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "limit=10")
	})
}

func TestLoggingExtractionClient_Generate(t *testing.T) {
	t.Parallel()

	t.Run("logs sizes not content", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ExtractionClient{
			GenerateFn: func(ctx context.Context, prompt string) (string, error) {
				return `{"name":"Celeste"}`, nil
			},
		}

		client := gpaslog.NewLoggingExtractionClient(inner, logger)
		response, err := client.Generate(context.Background(), "extract the game")

		require.NoError(t, err)
		assert.Equal(t, `{"name":"Celeste"}`, response)
		output := buf.String()
		assert.Contains(t, output, "generate")
		assert.Contains(t, output, "prompt_bytes=16")
		assert.Contains(t, output, "response_bytes=18")
		assert.NotContains(t, output, "Celeste")
	})
}
