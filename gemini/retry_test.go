package gemini_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/taimg1/game-platform-analyzer/gemini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

var errTransient = genai.APIError{Code: 503, Message: "service unavailable"}

// fakeSleep records requested delays without waiting.
func fakeSleep(delays *[]time.Duration) func(ctx context.Context, d time.Duration) error {
	return func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}
}

func TestRetryPolicy_Do(t *testing.T) {
	t.Parallel()

	t.Run("succeeds after transient errors within attempt cap", func(t *testing.T) {
		t.Parallel()

		var delays []time.Duration
		policy := gemini.RetryPolicy{
			MaxAttempts: 5,
			BaseDelay:   4 * time.Second,
			MaxDelay:    10 * time.Second,
			Retryable:   gemini.IsTransient,
			Sleep:       fakeSleep(&delays),
		}

		calls := 0
		err := policy.Do(context.Background(), func() error {
			calls++
			if calls <= 3 {
				return errTransient
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 4, calls)
		assert.Equal(t, []time.Duration{4 * time.Second, 8 * time.Second, 10 * time.Second}, delays)
	})

	t.Run("returns last error when attempts exhausted", func(t *testing.T) {
		t.Parallel()

		var delays []time.Duration
		policy := gemini.RetryPolicy{
			MaxAttempts: 3,
			BaseDelay:   time.Second,
			Retryable:   gemini.IsTransient,
			Sleep:       fakeSleep(&delays),
		}

		calls := 0
		err := policy.Do(context.Background(), func() error {
			calls++
			return errTransient
		})

		require.Error(t, err)
		assert.Equal(t, 3, calls)
		assert.Len(t, delays, 2)
	})

	t.Run("does not retry non-transient errors", func(t *testing.T) {
		t.Parallel()

		policy := gemini.RetryPolicy{
			MaxAttempts: 5,
			BaseDelay:   time.Second,
			Retryable:   gemini.IsTransient,
			Sleep: func(context.Context, time.Duration) error {
				t.Fatal("sleep should not be called")
				return nil
			},
		}

		permanent := genai.APIError{Code: 400, Message: "malformed request"}
		calls := 0
		err := policy.Do(context.Background(), func() error {
			calls++
			return permanent
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		policy := gemini.RetryPolicy{
			MaxAttempts: 5,
			BaseDelay:   time.Second,
			Retryable:   func(error) bool { return true },
			Sleep: func(ctx context.Context, _ time.Duration) error {
				cancel()
				return ctx.Err()
			},
		}

		err := policy.Do(ctx, func() error { return errors.New("boom") })

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("nil retryable predicate retries nothing", func(t *testing.T) {
		t.Parallel()

		policy := gemini.RetryPolicy{MaxAttempts: 5}

		calls := 0
		err := policy.Do(context.Background(), func() error {
			calls++
			return errors.New("boom")
		})

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestIsTransient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limited", genai.APIError{Code: 429}, true},
		{"internal", genai.APIError{Code: 500}, true},
		{"bad gateway", genai.APIError{Code: 502}, true},
		{"unavailable", genai.APIError{Code: 503}, true},
		{"gateway timeout", genai.APIError{Code: 504}, true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"malformed request", genai.APIError{Code: 400}, false},
		{"permission denied", genai.APIError{Code: 403}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, gemini.IsTransient(tt.err))
		})
	}
}

func TestDefaultRetryPolicy(t *testing.T) {
	t.Parallel()

	policy := gemini.DefaultRetryPolicy()

	assert.Equal(t, 5, policy.MaxAttempts)
	assert.Equal(t, 4*time.Second, policy.BaseDelay)
	assert.Equal(t, 10*time.Second, policy.MaxDelay)
	assert.NotNil(t, policy.Retryable)
}
