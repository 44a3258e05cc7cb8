package fetcher

import (
	"context"
	"time"
)

// Source names recorded in sources_used and in the availability map.
const (
	SourceEdinet = "edinet"
	SourceTdnet  = "tdnet"
	SourceEstat  = "estat"
	SourceBoj    = "boj"
	SourceStock  = "stock"
)

// Status classifies the terminal state of a guarded provider call.
type Status string

const (
	// StatusOK means the call completed; the value may still be absent
	// (nil pointer or empty slice), which is "no data", not an error
	StatusOK Status = "ok"
	// StatusFailed means the underlying call returned an error
	StatusFailed Status = "failed"
	// StatusTimeout means the call did not complete within its deadline
	StatusTimeout Status = "timeout"
)

// Outcome is the result of one timeout-guarded provider call. Exactly one
// of the three statuses holds; Value is only meaningful under StatusOK.
type Outcome[T any] struct {
	Value   T
	Status  Status
	Err     error
	Elapsed time.Duration
}

// OK reports whether the call completed without error or timeout.
func (o Outcome[T]) OK() bool {
	return o.Status == StatusOK
}

// Guard runs fn under a deadline and converts its result into an Outcome.
// If the deadline expires first, Guard stops waiting and returns a timeout
// outcome carrying the deadline; fn keeps running until it observes its
// context, but nothing past the guard ever sees its result.
func Guard[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) Outcome[T] {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type reply struct {
		value T
		err   error
	}
	done := make(chan reply, 1)

	go func() {
		value, err := fn(ctx)
		done <- reply{value: value, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			// A call that only noticed cancellation after the deadline is
			// still a timeout, not a provider failure.
			if ctx.Err() == context.DeadlineExceeded {
				return Outcome[T]{Status: StatusTimeout, Err: NewProviderError("deadline exceeded", r.err), Elapsed: timeout}
			}
			return Outcome[T]{Status: StatusFailed, Err: r.err}
		}
		return Outcome[T]{Value: r.value, Status: StatusOK}
	case <-ctx.Done():
		return Outcome[T]{Status: StatusTimeout, Err: ctx.Err(), Elapsed: timeout}
	}
}
