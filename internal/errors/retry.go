package errors

import (
	"context"
	"fmt"
	"math"
	"time"
)

// RetryConfig defines the retry behavior configuration.
type RetryConfig struct {
	// MaxAttempts is the maximum number of retry attempts (including the initial attempt).
	MaxAttempts int
	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration
	// MaxDelay is the maximum delay between retries.
	MaxDelay time.Duration
	// Multiplier is the backoff multiplier for exponential backoff.
	Multiplier float64
	// ShouldRetry is a custom function to determine if an error should be retried.
	// If nil, only transient errors are retried.
	ShouldRetry func(error) bool
	// OnRetry is called before each retry attempt with attempt number and error.
	OnRetry func(attempt int, err error)
}

// FileIORetryConfig returns retry configuration for the state file's
// filesystem calls, which on a shared NFS mount can fail
// transiently (ESTALE, a momentary server hiccup) without indicating real
// contention.
func FileIORetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  3,
		InitialDelay: 50 * time.Millisecond,
		MaxDelay:     2 * time.Second,
		Multiplier:   2.0,
	}
}

// Retry executes fn with retry logic according to the config.
// Returns nil once fn succeeds, a non-retryable error as fn returned it, or,
// after MaxAttempts failures, a permanent *Error wrapping the last error.
func Retry(fn func() error, config RetryConfig) error {
	return RetryWithContext(context.Background(), fn, config)
}

// RetryWithContext executes fn with retry logic and context support.
// The function stops retrying if the context is canceled.
func RetryWithContext(ctx context.Context, fn func() error, config RetryConfig) error {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 3
	}
	if config.InitialDelay <= 0 {
		config.InitialDelay = 100 * time.Millisecond
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = 10 * time.Second
	}
	if config.Multiplier <= 0 {
		config.Multiplier = 2.0
	}
	if config.ShouldRetry == nil {
		config.ShouldRetry = IsTransient
	}

	var lastErr error

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			if lastErr != nil {
				return fmt.Errorf("operation canceled after %d attempts: %w", attempt-1, lastErr)
			}
			return ctx.Err()
		default:
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == config.MaxAttempts {
			return &Error{
				Op:       "retry",
				Err:      lastErr,
				Category: CategoryPermanent,
				Message:  fmt.Sprintf("operation failed after %d attempts", config.MaxAttempts),
				Hint:     "The operation failed repeatedly. Check that the lock directory's filesystem is mounted and writable.",
			}
		}

		if !config.ShouldRetry(err) {
			return err
		}

		if config.OnRetry != nil {
			config.OnRetry(attempt, err)
		}

		delay := CalculateBackoff(attempt, config.InitialDelay, config.Multiplier, config.MaxDelay)
		select {
		case <-ctx.Done():
			return fmt.Errorf("operation canceled during retry delay: %w", lastErr)
		case <-time.After(delay):
		}
	}

	return lastErr
}

// WithFileIORetry wraps fn with FileIORetryConfig, for filesystem calls
// against the shared lock directory that a transient NFS hiccup can fail
// without indicating real lock contention.
func WithFileIORetry(fn func() error) error {
	return Retry(fn, FileIORetryConfig())
}

// CalculateBackoff calculates the backoff delay for a given attempt.
func CalculateBackoff(attempt int, initial time.Duration, multiplier float64, max time.Duration) time.Duration {
	if attempt <= 0 {
		return initial
	}

	delay := float64(initial) * math.Pow(multiplier, float64(attempt-1))
	if delay > float64(max) {
		return max
	}
	return time.Duration(delay)
}
