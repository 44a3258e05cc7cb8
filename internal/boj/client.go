// Package boj wraps the Bank of Japan time-series dataset service.
package boj

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"japanfinagent/internal/fetcher"
)

// Dataset describes one BOJ dataset plus a bounded sample of recent rows.
type Dataset struct {
	Name      string           `json:"name"`
	Shape     []int            `json:"shape,omitempty"`
	Columns   []string         `json:"columns,omitempty"`
	DateRange []string         `json:"date_range,omitempty"`
	Sample    []map[string]any `json:"sample,omitempty"`
}

// datasetResponse mirrors the dataset payload.
type datasetResponse struct {
	Name      string           `json:"name"`
	Shape     []int            `json:"shape"`
	Columns   []string         `json:"columns"`
	DateRange []string         `json:"date_range"`
	Rows      []map[string]any `json:"rows"`
}

// Client calls the BOJ dataset service.
type Client struct {
	client *resty.Client
}

// NewClient creates a BOJ client. The service requires no credentials.
func NewClient(baseURL string) *Client {
	return &Client{client: fetcher.NewHTTPClient(baseURL)}
}

// GetDataset fetches a dataset by name (e.g. "tankan", "money_stock").
// Rows are returned in full; callers sample the tail.
func (c *Client) GetDataset(ctx context.Context, name string) (*Dataset, error) {
	var result datasetResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("name", name).
		SetResult(&result).
		Get("/dataset.json")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch BOJ dataset %s: %w", name, err)
	}
	if !resp.IsSuccess() {
		return nil, fetcher.NewStatusError(resp.StatusCode(), "BOJ")
	}
	if result.Name == "" && len(result.Rows) == 0 {
		return nil, nil
	}

	return &Dataset{
		Name:      result.Name,
		Shape:     result.Shape,
		Columns:   result.Columns,
		DateRange: result.DateRange,
		Sample:    result.Rows,
	}, nil
}
