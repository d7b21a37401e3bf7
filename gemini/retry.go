package gemini

import (
	"context"
	"time"
)

// RetryPolicy describes bounded retry with exponential backoff for
// extraction calls. It is injected into the Client rather than attached
// implicitly so it can be tested with a fake clock and a fake failing
// operation.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// BaseDelay is the delay before the first retry. Each subsequent
	// delay doubles, capped at MaxDelay.
	BaseDelay time.Duration

	// MaxDelay bounds the backoff delay.
	MaxDelay time.Duration

	// Retryable decides whether an error is worth another attempt.
	// A nil predicate retries nothing.
	Retryable func(error) bool

	// Sleep waits for the given duration or until the context is
	// canceled. A nil Sleep uses the real clock.
	Sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryPolicy returns the production policy: 5 attempts with
// exponential backoff between 4s and 10s, retrying transient errors only.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   4 * time.Second,
		MaxDelay:    10 * time.Second,
		Retryable:   IsTransient,
	}
}

// Do runs fn until it succeeds, the error is not retryable, or attempts
// are exhausted. It returns the last error observed.
func (p RetryPolicy) Do(ctx context.Context, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	sleep := p.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	var lastErr error
	delay := p.BaseDelay
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if p.Retryable == nil || !p.Retryable(lastErr) {
			return lastErr
		}
		if attempt == attempts-1 {
			break
		}

		if err := sleep(ctx, delay); err != nil {
			return err
		}
		delay *= 2
		if p.MaxDelay > 0 && delay > p.MaxDelay {
			delay = p.MaxDelay
		}
	}

	return lastErr
}

// sleepContext waits for d or until ctx is canceled.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
