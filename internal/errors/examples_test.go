package errors_test

import (
	"context"
	"fmt"
	"time"

	"github.com/nfslockd/nfslock/internal/errors"
)

// Example_basicError demonstrates creating a basic error with context.
func Example_basicError() {
	err := errors.New("gate.Acquire", fmt.Errorf("lockfile already exists"))
	fmt.Println(err.Error())
	// Output:
	// gate.Acquire: lockfile already exists
}

// Example_errorWithHint demonstrates adding a recovery hint to an error.
func Example_errorWithHint() {
	err := errors.Permanent("handle.AcquireWrite", fmt.Errorf("identity already holds a lock")).
		WithHint("Call Release before requesting a new lock")

	fmt.Println(err.FullMessage())
	// Output:
	// handle.AcquireWrite: identity already holds a lock
	//
	// How to fix: Call Release before requesting a new lock
}

// Example_transientError demonstrates creating a transient error for retry.
func Example_transientError() {
	spinErr := fmt.Errorf("gate timeout")
	err := errors.Transient("gate.Acquire", spinErr)

	if errors.IsTransient(err) {
		fmt.Println("Error is transient and can be retried")
	}
	// Output:
	// Error is transient and can be retried
}

// Example_retry demonstrates retrying a flaky gate acquisition.
func Example_retry() {
	attempts := 0

	err := errors.WithFileIORetry(func() error {
		attempts++
		if attempts < 3 {
			return errors.Transient("gate.spin", fmt.Errorf("lockfile busy"))
		}
		return nil
	})

	if err == nil {
		fmt.Printf("Operation succeeded after %d attempts\n", attempts)
	}
	// Output:
	// Operation succeeded after 3 attempts
}

// Example_retryWithContext demonstrates context-aware retry.
func Example_retryWithContext() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	config := errors.RetryConfig{
		MaxAttempts:  10,
		InitialDelay: 100 * time.Millisecond,
		Multiplier:   2.0,
	}

	err := errors.RetryWithContext(ctx, func() error {
		return nil
	}, config)

	if err == nil {
		fmt.Println("Operation completed within timeout")
	}
	// Output:
	// Operation completed within timeout
}

// Example_errorEnrichment demonstrates automatic error enrichment.
func Example_errorEnrichment() {
	ioErr := errors.Transient("state.Load", fmt.Errorf("no such file or directory: /mnt/locks/state"))
	enriched := errors.EnrichErrorWithHint(ioErr)

	hint := errors.GetHint(enriched)
	if hint != "" {
		fmt.Println("Hint provided for missing state file")
	}
	// Output:
	// Hint provided for missing state file
}

// Example_errorChaining demonstrates error wrapping and unwrapping.
func Example_errorChaining() {
	baseErr := fmt.Errorf("base error")
	wrappedErr := errors.New("gate.Acquire", baseErr)
	doubleWrapped := errors.New("handle.AcquireWrite", wrappedErr)

	if errors.Is(doubleWrapped, baseErr) {
		fmt.Println("Base error found in chain")
	}

	var e *errors.Error
	if errors.As(doubleWrapped, &e) {
		fmt.Printf("Found error with operation: %s\n", e.Op)
	}
	// Output:
	// Base error found in chain
	// Found error with operation: handle.AcquireWrite
}
