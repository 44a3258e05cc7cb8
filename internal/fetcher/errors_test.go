package fetcher

import (
	"errors"
	"testing"
)

func TestFetchError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *FetchError
		expected string
	}{
		{
			name:     "with status code",
			err:      NewStatusError(503, "EDINET"),
			expected: "provider error (status 503): EDINET API returned status 503",
		},
		{
			name:     "without status code",
			err:      NewValidationError("bad code"),
			expected: "validation error: bad code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestFetchError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewProviderError("fetch failed", cause)

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is() did not find the cause %v", cause)
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(NewValidationError("bad input")) {
		t.Error("IsValidation() = false for a validation error")
	}
	if IsValidation(NewProviderError("boom", nil)) {
		t.Error("IsValidation() = true for a provider error")
	}
	if IsValidation(errors.New("plain")) {
		t.Error("IsValidation() = true for a plain error")
	}
}
