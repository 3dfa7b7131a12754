package retry

import (
	"context"
	"time"

	"github.com/vvka-141/memload/pkg/memload"
)

// Executor orchestrates retry attempts with backoff and error classification.
//
// Thread-Safety: Execute is safe for concurrent use. WithOnRetry returns a
// new instance with the callback configured, so goroutines can hold their own
// configuration without shared state.
type Executor struct {
	classifier memload.ErrorClassifier
	strategy   memload.BackoffStrategy
	onRetry    func(attempt int, err error, delay time.Duration)
}

// NewExecutor creates a new retry executor with the given configuration.
// Panics if classifier or strategy is nil: these are programmer errors that
// should fail loudly at startup.
func NewExecutor(classifier memload.ErrorClassifier, strategy memload.BackoffStrategy) *Executor {
	if classifier == nil {
		panic("classifier cannot be nil")
	}
	if strategy == nil {
		panic("strategy cannot be nil")
	}
	return &Executor{
		classifier: classifier,
		strategy:   strategy,
	}
}

// WithOnRetry returns a copy of the Executor with the given callback invoked
// before each retry attempt. The receiver is not modified.
func (e *Executor) WithOnRetry(callback func(attempt int, err error, delay time.Duration)) *Executor {
	clone := *e
	clone.onRetry = callback
	return &clone
}

// Execute runs the operation, retrying transient failures until the backoff
// strategy's attempt budget is exhausted. A negative budget retries forever.
// Returns nil on success, the last error otherwise; fatal (non-transient)
// errors and context cancellation end the attempts immediately.
func (e *Executor) Execute(ctx context.Context, operation func(ctx context.Context) error) error {
	maxAttempts := e.strategy.MaxAttempts()

	lastErr := operation(ctx)
	if lastErr == nil || !e.classifier.IsTransient(lastErr) {
		return lastErr
	}

	for attempt := 0; maxAttempts < 0 || attempt < maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		delay := e.strategy.NextDelay(attempt)
		if e.onRetry != nil {
			e.onRetry(attempt, lastErr, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		lastErr = operation(ctx)
		if lastErr == nil || !e.classifier.IsTransient(lastErr) {
			return lastErr
		}
	}

	return lastErr
}
