// Package guard bounds units of work by wall-clock deadline.
package guard

import (
	"context"
	"fmt"
	"time"
)

// DefaultTimeout is applied by [RunBounded] when the caller passes a
// non-positive timeout.
const DefaultTimeout = 30 * time.Second

// TimeoutMessage is the error message reported when the deadline fires.
const TimeoutMessage = "operation timed out"

type boundedResult[T any] struct {
	value T
	err   error
}

// RunBounded executes op under a wall-clock deadline derived from ctx.
//
// Cancellation is cooperative and advisory: op receives the derived context
// and is expected to observe it, but it is not preemptively killed. When the
// deadline fires the operation is abandoned at the scheduler boundary and any
// partial side effects it has already performed are considered committed;
// callers must not assume side effect ordering relative to the timeout.
//
// Faults raised by op — an error return or a panic — are converted into a
// failure outcome carrying a sanitized message; they are never propagated to
// the caller as a raw fault.
//
// Returns the operation result, whether it succeeded, and a non-empty error
// message when it did not.
func RunBounded[T any](ctx context.Context, timeout time.Duration, op func(context.Context) (T, error)) (T, bool, string) {
	var zero T

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	opCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	results := make(chan boundedResult[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				results <- boundedResult[T]{err: fmt.Errorf("operation failed: %v", r)}
			}
		}()

		value, err := op(opCtx)
		if err != nil {
			results <- boundedResult[T]{err: fmt.Errorf("operation failed: %w", err)}
			return
		}
		results <- boundedResult[T]{value: value}
	}()

	select {
	case <-opCtx.Done():
		return zero, false, TimeoutMessage
	case res := <-results:
		if res.err != nil {
			return zero, false, res.err.Error()
		}
		return res.value, true, ""
	}
}
