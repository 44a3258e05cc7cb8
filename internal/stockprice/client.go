// Package stockprice wraps the Yahoo Finance quote API for Tokyo-listed
// stocks. Codes are suffixed with ".T" on the wire.
package stockprice

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"japanfinagent/internal/fetcher"
)

// Quote is the latest price snapshot for one stock code.
type Quote struct {
	Code        string   `json:"code"`
	Date        string   `json:"date,omitempty"`
	Close       *float64 `json:"close,omitempty"`
	Open        *float64 `json:"open,omitempty"`
	High        *float64 `json:"high,omitempty"`
	Low         *float64 `json:"low,omitempty"`
	Volume      *int64   `json:"volume,omitempty"`
	Week52High  *float64 `json:"week52_high,omitempty"`
	Week52Low   *float64 `json:"week52_low,omitempty"`
	TrailingPE  *float64 `json:"trailing_pe,omitempty"`
	PriceToBook *float64 `json:"price_to_book,omitempty"`
	MarketCap   *int64   `json:"market_cap,omitempty"`
}

// quoteResponse mirrors the Yahoo Finance v7 quote payload.
type quoteResponse struct {
	QuoteResponse struct {
		Result []struct {
			Symbol             string   `json:"symbol"`
			RegularMarketTime  int64    `json:"regularMarketTime"`
			RegularMarketPrice *float64 `json:"regularMarketPrice"`
			RegularMarketOpen  *float64 `json:"regularMarketOpen"`
			RegularMarketHigh  *float64 `json:"regularMarketDayHigh"`
			RegularMarketLow   *float64 `json:"regularMarketDayLow"`
			RegularMarketVol   *int64   `json:"regularMarketVolume"`
			FiftyTwoWeekHigh   *float64 `json:"fiftyTwoWeekHigh"`
			FiftyTwoWeekLow    *float64 `json:"fiftyTwoWeekLow"`
			TrailingPE         *float64 `json:"trailingPE"`
			PriceToBook        *float64 `json:"priceToBook"`
			MarketCap          *int64   `json:"marketCap"`
		} `json:"result"`
	} `json:"quoteResponse"`
}

// Client calls the quote API.
type Client struct {
	client *resty.Client
}

// NewClient creates a stock price client.
func NewClient(baseURL string) *Client {
	return &Client{client: fetcher.NewHTTPClient(baseURL)}
}

// GetQuote fetches the latest quote for a 4-digit stock code. A code the
// exchange does not know yields (nil, nil), not an error.
func (c *Client) GetQuote(ctx context.Context, code string) (*Quote, error) {
	var result quoteResponse

	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("symbols", code+".T").
		SetResult(&result).
		Get("/quote")

	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %w", code, err)
	}
	if !resp.IsSuccess() {
		return nil, fetcher.NewStatusError(resp.StatusCode(), "quote")
	}

	results := result.QuoteResponse.Result
	if len(results) == 0 {
		return nil, nil
	}
	r := results[0]

	date := ""
	if r.RegularMarketTime > 0 {
		date = time.Unix(r.RegularMarketTime, 0).UTC().Format("2006-01-02")
	}

	return &Quote{
		Code:        code,
		Date:        date,
		Close:       r.RegularMarketPrice,
		Open:        r.RegularMarketOpen,
		High:        r.RegularMarketHigh,
		Low:         r.RegularMarketLow,
		Volume:      r.RegularMarketVol,
		Week52High:  r.FiftyTwoWeekHigh,
		Week52Low:   r.FiftyTwoWeekLow,
		TrailingPE:  r.TrailingPE,
		PriceToBook: r.PriceToBook,
		MarketCap:   r.MarketCap,
	}, nil
}
