package testutil

import (
	"context"

	"japanfinagent/internal/edinet"
	"japanfinagent/internal/estat"
	"japanfinagent/internal/stockprice"
	"japanfinagent/internal/tdnet"
)

// MockSources is a func-field implementation of analysis.DataSources for
// tests. Unset funcs return the source's absent value.
type MockSources struct {
	SearchCompaniesFunc    func(ctx context.Context, query string) ([]edinet.CompanyMatch, error)
	CompanyStatementsFunc  func(ctx context.Context, edinetCode, period string) (*edinet.Statements, error)
	CompanyDisclosuresFunc func(ctx context.Context, code string, limit int) ([]tdnet.Disclosure, error)
	StockPriceFunc         func(ctx context.Context, code string) (*stockprice.Quote, error)
	SearchStatsFunc        func(ctx context.Context, keyword string, limit int) ([]estat.Table, error)
}

// SearchCompanies implements analysis.DataSources
func (m *MockSources) SearchCompanies(ctx context.Context, query string) ([]edinet.CompanyMatch, error) {
	if m.SearchCompaniesFunc != nil {
		return m.SearchCompaniesFunc(ctx, query)
	}
	return nil, nil
}

// CompanyStatements implements analysis.DataSources
func (m *MockSources) CompanyStatements(ctx context.Context, edinetCode, period string) (*edinet.Statements, error) {
	if m.CompanyStatementsFunc != nil {
		return m.CompanyStatementsFunc(ctx, edinetCode, period)
	}
	return nil, nil
}

// CompanyDisclosures implements analysis.DataSources
func (m *MockSources) CompanyDisclosures(ctx context.Context, code string, limit int) ([]tdnet.Disclosure, error) {
	if m.CompanyDisclosuresFunc != nil {
		return m.CompanyDisclosuresFunc(ctx, code, limit)
	}
	return nil, nil
}

// StockPrice implements analysis.DataSources
func (m *MockSources) StockPrice(ctx context.Context, code string) (*stockprice.Quote, error) {
	if m.StockPriceFunc != nil {
		return m.StockPriceFunc(ctx, code)
	}
	return nil, nil
}

// SearchStats implements analysis.DataSources
func (m *MockSources) SearchStats(ctx context.Context, keyword string, limit int) ([]estat.Table, error) {
	if m.SearchStatsFunc != nil {
		return m.SearchStatsFunc(ctx, keyword, limit)
	}
	return nil, nil
}
