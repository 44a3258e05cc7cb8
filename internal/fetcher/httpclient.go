package fetcher

import (
	"resty.dev/v3"
)

// NewHTTPClient creates an HTTP client for a provider API. Requests carry
// no retry policy: a failed call is absorbed as an absent result by the
// caller rather than retried.
func NewHTTPClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
}
