// Package edinet wraps the EDINET securities-filing API: financial
// statements for a filer and company search by name or stock code.
package edinet

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"japanfinagent/internal/fetcher"
)

// LineItem is a single income-statement or balance-sheet row.
type LineItem struct {
	Name  string   `json:"name"`
	Value *float64 `json:"value,omitempty"`
	Unit  string   `json:"unit,omitempty"`
}

// Statements is the normalized filing record for one company and period.
type Statements struct {
	CompanyName        string                        `json:"company_name,omitempty"`
	AccountingStandard string                        `json:"accounting_standard,omitempty"`
	FilingDate         string                        `json:"filing_date,omitempty"`
	IncomeStatement    []LineItem                    `json:"income_statement,omitempty"`
	BalanceSheet       []LineItem                    `json:"balance_sheet,omitempty"`
	Metrics            map[string]map[string]float64 `json:"metrics,omitempty"`
}

// CompanyMatch is one company-search hit.
type CompanyMatch struct {
	EdinetCode string `json:"edinet_code"`
	Name       string `json:"name"`
	Ticker     string `json:"ticker,omitempty"`
}

// statementsResponse mirrors the EDINET statements payload.
type statementsResponse struct {
	Filing struct {
		CompanyName string `json:"company_name"`
		FilingDate  string `json:"filing_date"`
	} `json:"filing"`
	AccountingStandard string                        `json:"accounting_standard"`
	IncomeStatement    []LineItem                    `json:"income_statement"`
	BalanceSheet       []LineItem                    `json:"balance_sheet"`
	Metrics            map[string]map[string]float64 `json:"metrics"`
}

// searchResponse mirrors the EDINET company-search payload.
type searchResponse struct {
	Results []struct {
		EdinetCode string `json:"edinetCode"`
		FilerName  string `json:"filerName"`
		SecCode    string `json:"secCode"`
	} `json:"results"`
}

// Client calls the EDINET API.
type Client struct {
	apiKey string
	client *resty.Client
}

// NewClient creates an EDINET client.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey: apiKey,
		client: fetcher.NewHTTPClient(baseURL),
	}
}

// GetStatements fetches financial statements for an EDINET filer code and
// fiscal period year.
func (c *Client) GetStatements(ctx context.Context, edinetCode, period string) (*Statements, error) {
	var result statementsResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"edinetCode":       edinetCode,
			"period":           period,
			"Subscription-Key": c.apiKey,
		}).
		SetResult(&result).
		Get("/statements.json")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch statements for %s: %w", edinetCode, err)
	}
	if !resp.IsSuccess() {
		return nil, fetcher.NewStatusError(resp.StatusCode(), "EDINET")
	}
	if result.Filing.CompanyName == "" && len(result.IncomeStatement) == 0 {
		// No filing for this code/period combination
		return nil, nil
	}

	return &Statements{
		CompanyName:        result.Filing.CompanyName,
		AccountingStandard: result.AccountingStandard,
		FilingDate:         result.Filing.FilingDate,
		IncomeStatement:    result.IncomeStatement,
		BalanceSheet:       result.BalanceSheet,
		Metrics:            result.Metrics,
	}, nil
}

// SearchCompanies searches EDINET filers by company name or stock code.
func (c *Client) SearchCompanies(ctx context.Context, query string) ([]CompanyMatch, error) {
	var result searchResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"q":                query,
			"Subscription-Key": c.apiKey,
		}).
		SetResult(&result).
		Get("/companies.json")

	if err != nil {
		return nil, fmt.Errorf("failed to search companies for %q: %w", query, err)
	}
	if !resp.IsSuccess() {
		return nil, fetcher.NewStatusError(resp.StatusCode(), "EDINET")
	}

	matches := make([]CompanyMatch, 0, len(result.Results))
	for _, r := range result.Results {
		matches = append(matches, CompanyMatch{
			EdinetCode: r.EdinetCode,
			Name:       r.FilerName,
			Ticker:     r.SecCode,
		})
	}
	return matches, nil
}
