package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	gpa "github.com/taimg1/game-platform-analyzer"
	gpahttp "github.com/taimg1/game-platform-analyzer/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hollow Knight - $14.99</body></html>"))
		}))
		defer server.Close()

		fetcher := gpahttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hollow Knight - $14.99</body></html>", html)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		// Use a very short timeout that will expire before server responds
		fetcher := gpahttp.NewFetcher(gpahttp.WithTimeout(10 * time.Millisecond))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := gpahttp.NewFetcher()
		defer fetcher.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // Cancel immediately

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("maps 404 to not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := gpahttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, gpa.ENOTFOUND, gpa.ErrorCode(err))
	})

	t.Run("maps other non-200 statuses to unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		fetcher := gpahttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, gpa.EUNAVAILABLE, gpa.ErrorCode(err))
	})
}

func TestFetcher_Open(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>catalog</body></html>"))
	}))
	defer server.Close()

	fetcher := gpahttp.NewFetcher()
	defer fetcher.Close()

	session, err := fetcher.Open(context.Background(), server.URL)
	require.NoError(t, err)
	defer session.Close()

	html, err := session.HTML(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<html><body>catalog</body></html>", html)
	assert.Equal(t, server.URL, session.URL())

	// A static snapshot has no pagination to drive.
	err = session.Activate(context.Background(), ".next")
	require.Error(t, err)
	assert.Equal(t, gpa.EUNAVAILABLE, gpa.ErrorCode(err))
}
