// Package adapters wraps each provider client behind the agent's
// absorb-and-log policy: a source that is not configured yields its absent
// value immediately, a source that fails is logged and reported as an
// error for the timeout guard to classify, and list results are truncated
// to a bounded prefix.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"japanfinagent/internal/boj"
	"japanfinagent/internal/config"
	"japanfinagent/internal/edinet"
	"japanfinagent/internal/estat"
	"japanfinagent/internal/fetcher"
	"japanfinagent/internal/stockprice"
	"japanfinagent/internal/tdnet"
)

const (
	maxLineItems     = 20
	maxSearchMatches = 10
	sampleRows       = 5
)

// Order is the canonical evaluation order of sources in diagnostics.
var Order = []string{
	fetcher.SourceEdinet,
	fetcher.SourceTdnet,
	fetcher.SourceEstat,
	fetcher.SourceBoj,
	fetcher.SourceStock,
}

// Sources adapts the provider clients to the aggregation layer. Clients
// are constructed per call and scoped to it.
type Sources struct {
	cfg *config.Config
	log zerolog.Logger
	now func() time.Time
}

// New creates the adapter set for the given configuration.
func New(cfg *config.Config, log zerolog.Logger) *Sources {
	return &Sources{cfg: cfg, log: log, now: time.Now}
}

func (s *Sources) edinetAvailable() bool { return s.cfg.EdinetAPIKey != "" }
func (s *Sources) estatAvailable() bool  { return s.cfg.EstatAppID != "" }
func (s *Sources) tdnetAvailable() bool  { return s.cfg.TdnetEnabled }
func (s *Sources) bojAvailable() bool    { return s.cfg.BojEnabled }
func (s *Sources) stockAvailable() bool  { return s.cfg.StockEnabled }

// defaultPeriod picks the previous fiscal year: filings for year N are
// generally published by the end of June N+1.
func (s *Sources) defaultPeriod() string {
	now := s.now()
	if now.Month() >= time.July {
		return fmt.Sprintf("%d", now.Year()-1)
	}
	return fmt.Sprintf("%d", now.Year()-2)
}

// CompanyStatements fetches financial statements from EDINET.
func (s *Sources) CompanyStatements(ctx context.Context, edinetCode, period string) (*edinet.Statements, error) {
	if !s.edinetAvailable() {
		s.log.Debug().Msg("EDINET not configured, skipping")
		return nil, nil
	}
	if period == "" {
		period = s.defaultPeriod()
	}

	client := edinet.NewClient(s.cfg.EdinetAPIKey, s.cfg.EdinetBaseURL)
	stmt, err := client.GetStatements(ctx, edinetCode, period)
	if err != nil {
		s.log.Warn().Err(err).Str("edinet_code", edinetCode).Msg("EDINET fetch failed")
		return nil, err
	}
	if stmt == nil {
		return nil, nil
	}

	if len(stmt.IncomeStatement) > maxLineItems {
		stmt.IncomeStatement = stmt.IncomeStatement[:maxLineItems]
	}
	if len(stmt.BalanceSheet) > maxLineItems {
		stmt.BalanceSheet = stmt.BalanceSheet[:maxLineItems]
	}
	return stmt, nil
}

// SearchCompanies searches EDINET filers, bounded to a prefix of matches.
func (s *Sources) SearchCompanies(ctx context.Context, query string) ([]edinet.CompanyMatch, error) {
	if !s.edinetAvailable() {
		return nil, nil
	}

	client := edinet.NewClient(s.cfg.EdinetAPIKey, s.cfg.EdinetBaseURL)
	matches, err := client.SearchCompanies(ctx, query)
	if err != nil {
		s.log.Warn().Err(err).Str("query", query).Msg("EDINET search failed")
		return nil, err
	}
	if len(matches) > maxSearchMatches {
		matches = matches[:maxSearchMatches]
	}
	return matches, nil
}

// CompanyDisclosures fetches recent TDnet disclosures for one company.
func (s *Sources) CompanyDisclosures(ctx context.Context, code string, limit int) ([]tdnet.Disclosure, error) {
	if !s.tdnetAvailable() {
		s.log.Debug().Msg("TDnet disabled, skipping")
		return nil, nil
	}

	client := tdnet.NewClient(s.cfg.TdnetBaseURL)
	disclosures, err := client.GetByCode(ctx, code, limit)
	if err != nil {
		s.log.Warn().Err(err).Str("code", code).Msg("TDnet fetch failed")
		return nil, err
	}
	return disclosures, nil
}

// LatestDisclosures fetches the latest TDnet disclosures across companies.
func (s *Sources) LatestDisclosures(ctx context.Context, limit int) ([]tdnet.Disclosure, error) {
	if !s.tdnetAvailable() {
		return nil, nil
	}

	client := tdnet.NewClient(s.cfg.TdnetBaseURL)
	disclosures, err := client.GetRecent(ctx, limit)
	if err != nil {
		s.log.Warn().Err(err).Msg("TDnet latest fetch failed")
		return nil, err
	}
	return disclosures, nil
}

// StockPrice fetches the latest quote for a stock code.
func (s *Sources) StockPrice(ctx context.Context, code string) (*stockprice.Quote, error) {
	if !s.stockAvailable() {
		s.log.Debug().Msg("stock source disabled, skipping")
		return nil, nil
	}

	client := stockprice.NewClient(s.cfg.StockBaseURL)
	quote, err := client.GetQuote(ctx, code)
	if err != nil {
		s.log.Warn().Err(err).Str("code", code).Msg("stock quote fetch failed")
		return nil, err
	}
	return quote, nil
}

// SearchStats searches e-Stat statistics tables by keyword.
func (s *Sources) SearchStats(ctx context.Context, keyword string, limit int) ([]estat.Table, error) {
	if !s.estatAvailable() {
		s.log.Debug().Msg("e-Stat not configured, skipping")
		return nil, nil
	}

	client := estat.NewClient(s.cfg.EstatAppID, s.cfg.EstatBaseURL)
	tables, err := client.SearchStats(ctx, keyword, limit)
	if err != nil {
		s.log.Warn().Err(err).Str("keyword", keyword).Msg("e-Stat search failed")
		return nil, err
	}
	return tables, nil
}

// BojDataset fetches a BOJ dataset, sampling the most recent rows.
func (s *Sources) BojDataset(ctx context.Context, name string) (*boj.Dataset, error) {
	if !s.bojAvailable() {
		s.log.Debug().Msg("BOJ source disabled, skipping")
		return nil, nil
	}

	client := boj.NewClient(s.cfg.BojBaseURL)
	dataset, err := client.GetDataset(ctx, name)
	if err != nil {
		s.log.Warn().Err(err).Str("dataset", name).Msg("BOJ fetch failed")
		return nil, err
	}
	if dataset != nil && len(dataset.Sample) > sampleRows {
		dataset.Sample = dataset.Sample[len(dataset.Sample)-sampleRows:]
	}
	return dataset, nil
}

// CheckAvailableSources reports which sources are configured. It is pure:
// no network calls, same answer for the same configuration.
func (s *Sources) CheckAvailableSources() map[string]bool {
	return map[string]bool{
		fetcher.SourceEdinet: s.edinetAvailable(),
		fetcher.SourceTdnet:  s.tdnetAvailable(),
		fetcher.SourceEstat:  s.estatAvailable(),
		fetcher.SourceBoj:    s.bojAvailable(),
		fetcher.SourceStock:  s.stockAvailable(),
	}
}

// TestConnections performs one minimal live call per available source and
// reports a status string per source. It never returns an error; failures
// are encoded in the status.
func (s *Sources) TestConnections(ctx context.Context) map[string]string {
	results := make(map[string]string, len(Order))
	available := s.CheckAvailableSources()

	for _, source := range Order {
		if !available[source] {
			results[source] = "not installed"
			continue
		}

		switch source {
		case fetcher.SourceEdinet:
			matches, err := s.SearchCompanies(ctx, "トヨタ")
			results[source] = statusString(len(matches), err)
		case fetcher.SourceTdnet:
			disclosures, err := s.LatestDisclosures(ctx, 1)
			results[source] = statusString(len(disclosures), err)
		case fetcher.SourceEstat:
			tables, err := s.SearchStats(ctx, "GDP", 1)
			results[source] = statusString(len(tables), err)
		case fetcher.SourceBoj, fetcher.SourceStock:
			results[source] = "ok (configured)"
		}
	}
	return results
}

func statusString(n int, err error) string {
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return fmt.Sprintf("ok (%d results)", n)
}
