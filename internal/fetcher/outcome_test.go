package fetcher

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestGuard_Success(t *testing.T) {
	out := Guard(context.Background(), time.Second, func(ctx context.Context) (string, error) {
		return "data", nil
	})

	if !out.OK() {
		t.Fatalf("Status = %q, want %q", out.Status, StatusOK)
	}
	if out.Value != "data" {
		t.Errorf("Value = %q, want %q", out.Value, "data")
	}
	if out.Err != nil {
		t.Errorf("Err = %v, want nil", out.Err)
	}
}

func TestGuard_AbsentValueIsOK(t *testing.T) {
	out := Guard(context.Background(), time.Second, func(ctx context.Context) (*struct{}, error) {
		return nil, nil
	})

	if !out.OK() {
		t.Fatalf("Status = %q, want %q", out.Status, StatusOK)
	}
	if out.Value != nil {
		t.Errorf("Value = %v, want nil", out.Value)
	}
}

func TestGuard_Failure(t *testing.T) {
	fetchErr := errors.New("fetch failed")

	out := Guard(context.Background(), time.Second, func(ctx context.Context) (string, error) {
		return "", fetchErr
	})

	if out.Status != StatusFailed {
		t.Fatalf("Status = %q, want %q", out.Status, StatusFailed)
	}
	if !errors.Is(out.Err, fetchErr) {
		t.Errorf("Err = %v, want %v", out.Err, fetchErr)
	}
	if out.OK() {
		t.Error("OK() = true for a failed outcome")
	}
}

func TestGuard_Timeout(t *testing.T) {
	timeout := 20 * time.Millisecond

	out := Guard(context.Background(), timeout, func(ctx context.Context) (string, error) {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(5 * time.Second):
			return "late", nil
		}
	})

	if out.Status != StatusTimeout {
		t.Fatalf("Status = %q, want %q", out.Status, StatusTimeout)
	}
	if out.Elapsed != timeout {
		t.Errorf("Elapsed = %v, want %v", out.Elapsed, timeout)
	}
	if out.Value != "" {
		t.Errorf("Value = %q, want empty", out.Value)
	}
}

func TestGuard_TimeoutIgnoresResult(t *testing.T) {
	// A call that never observes its context still times out; the guard
	// stops waiting.
	start := time.Now()
	out := Guard(context.Background(), 20*time.Millisecond, func(ctx context.Context) (int, error) {
		time.Sleep(2 * time.Second)
		return 42, nil
	})

	if out.Status != StatusTimeout {
		t.Fatalf("Status = %q, want %q", out.Status, StatusTimeout)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Guard waited %v, should have returned at the deadline", elapsed)
	}
}
