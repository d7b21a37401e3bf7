package scrape_test

import (
	"context"
	"testing"
	"time"

	"github.com/taimg1/game-platform-analyzer/scrape"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request per domain is immediate", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(1.0)

		start := time.Now()
		err := limiter.Wait(context.Background(), "store-a.example.com")
		require.NoError(t, err)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("domains do not throttle each other", func(t *testing.T) {
		t.Parallel()

		// 1 rps: a second request to the same domain would wait ~1s, but a
		// different domain has its own bucket.
		limiter := scrape.NewDomainLimiter(1.0)
		require.NoError(t, limiter.Wait(context.Background(), "store-a.example.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "store-b.example.com")
		require.NoError(t, err)
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("paces repeated requests to one domain", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(20.0) // 50ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "store.example.com"))
		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "store.example.com"))
		assert.GreaterOrEqual(t, time.Since(start), 25*time.Millisecond)
	})

	t.Run("returns when the context is canceled", func(t *testing.T) {
		t.Parallel()

		limiter := scrape.NewDomainLimiter(0.1) // 10s between requests
		require.NoError(t, limiter.Wait(context.Background(), "store.example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		err := limiter.Wait(ctx, "store.example.com")
		require.Error(t, err)
	})
}
