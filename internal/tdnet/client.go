// Package tdnet wraps the TDnet timely-disclosure feed.
package tdnet

import (
	"context"
	"fmt"
	"strconv"

	"resty.dev/v3"

	"japanfinagent/internal/fetcher"
)

// Disclosure is one timely-disclosure record.
type Disclosure struct {
	Pubdate     string `json:"pubdate,omitempty"`
	CompanyCode string `json:"company_code,omitempty"`
	CompanyName string `json:"company_name,omitempty"`
	Title       string `json:"title"`
	Category    string `json:"category,omitempty"`
	DocumentURL string `json:"document_url,omitempty"`
}

// listResponse mirrors the TDnet list payload: one wrapper object per item.
type listResponse struct {
	Items []struct {
		Tdnet struct {
			Pubdate     string `json:"pubdate"`
			CompanyCode string `json:"company_code"`
			CompanyName string `json:"company_name"`
			Title       string `json:"title"`
			Category    string `json:"category"`
			DocumentURL string `json:"document_url"`
		} `json:"Tdnet"`
	} `json:"items"`
}

// Client calls the TDnet disclosure API.
type Client struct {
	client *resty.Client
}

// NewClient creates a TDnet client. The feed requires no credentials.
func NewClient(baseURL string) *Client {
	return &Client{client: fetcher.NewHTTPClient(baseURL)}
}

// GetByCode fetches recent disclosures for one stock code, newest first.
func (c *Client) GetByCode(ctx context.Context, code string, limit int) ([]Disclosure, error) {
	return c.list(ctx, fmt.Sprintf("/list/%s.json", code), limit)
}

// GetRecent fetches the latest disclosures across all companies.
func (c *Client) GetRecent(ctx context.Context, limit int) ([]Disclosure, error) {
	return c.list(ctx, "/list/recent.json", limit)
}

func (c *Client) list(ctx context.Context, path string, limit int) ([]Disclosure, error) {
	var result listResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&result).
		Get(path)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch disclosures from %s: %w", path, err)
	}
	if !resp.IsSuccess() {
		return nil, fetcher.NewStatusError(resp.StatusCode(), "TDnet")
	}

	disclosures := make([]Disclosure, 0, len(result.Items))
	for _, item := range result.Items {
		d := item.Tdnet
		disclosures = append(disclosures, Disclosure{
			Pubdate:     d.Pubdate,
			CompanyCode: d.CompanyCode,
			CompanyName: d.CompanyName,
			Title:       d.Title,
			Category:    d.Category,
			DocumentURL: d.DocumentURL,
		})
	}
	return disclosures, nil
}
