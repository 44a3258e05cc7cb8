// Package analysis implements the compound aggregation operations. Each
// operation fans out timeout-guarded fetches to independent sources,
// tolerates partial failure, and folds the outcomes into one fixed result
// shape with sources_used provenance. Given valid input the operations
// are total: every source failing still yields a complete, degraded
// result.
package analysis

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"japanfinagent/internal/edinet"
	"japanfinagent/internal/estat"
	"japanfinagent/internal/fetcher"
	"japanfinagent/internal/stockprice"
	"japanfinagent/internal/tdnet"
)

// Default bounds applied when callers pass zero values.
const (
	DefaultDisclosureLimit = 10
	DefaultMonitorLimit    = 5
	DefaultEstatLimit      = 5
	DefaultKeyword         = "GDP"
)

// DataSources is the slice of the adapter layer the aggregator needs.
// Implementations return their absent value (nil, empty slice) for
// unconfigured sources and an error only for execution failures.
type DataSources interface {
	SearchCompanies(ctx context.Context, query string) ([]edinet.CompanyMatch, error)
	CompanyStatements(ctx context.Context, edinetCode, period string) (*edinet.Statements, error)
	CompanyDisclosures(ctx context.Context, code string, limit int) ([]tdnet.Disclosure, error)
	StockPrice(ctx context.Context, code string) (*stockprice.Quote, error)
	SearchStats(ctx context.Context, keyword string, limit int) ([]estat.Table, error)
}

// CompanyAnalysis combines statements, disclosures and price for one company.
type CompanyAnalysis struct {
	Code        string             `json:"code"`
	EdinetCode  string             `json:"edinet_code,omitempty"`
	CompanyName string             `json:"company_name,omitempty"`
	Statements  *edinet.Statements `json:"statements,omitempty"`
	Disclosures []tdnet.Disclosure `json:"disclosures"`
	StockPrice  *stockprice.Quote  `json:"stock_price,omitempty"`
	SourcesUsed []string           `json:"sources_used"`
}

// MacroSnapshot holds government statistics tables for a keyword.
type MacroSnapshot struct {
	EstatData   []estat.Table `json:"estat_data"`
	SourcesUsed []string      `json:"sources_used"`
}

// EarningsEntry is one company in an earnings watchlist.
type EarningsEntry struct {
	Code        string             `json:"code"`
	CompanyName string             `json:"company_name,omitempty"`
	Disclosures []tdnet.Disclosure `json:"disclosures"`
	// Metrics is reserved for a future statements join; always nil today.
	Metrics map[string]any `json:"metrics,omitempty"`
}

// EarningsMonitor is the watchlist result, one entry per requested code.
type EarningsMonitor struct {
	Companies        []EarningsEntry `json:"companies"`
	TotalDisclosures int             `json:"total_disclosures"`
	SourcesUsed      []string        `json:"sources_used"`
}

// Service runs the aggregation operations against a set of data sources.
type Service struct {
	sources DataSources
	timeout time.Duration
	log     zerolog.Logger
}

// New creates a Service. timeout bounds each guarded provider call.
func New(sources DataSources, timeout time.Duration, log zerolog.Logger) *Service {
	return &Service{sources: sources, timeout: timeout, log: log}
}

// AnalyzeCompany fetches statements, disclosures and price concurrently
// for one stock code. If edinetCode is empty it is resolved first via
// company search, taking the first match. A zero disclosureLimit means
// DefaultDisclosureLimit.
func (s *Service) AnalyzeCompany(ctx context.Context, code, edinetCode, period string, disclosureLimit int) CompanyAnalysis {
	if disclosureLimit <= 0 {
		disclosureLimit = DefaultDisclosureLimit
	}

	companyName := ""
	if edinetCode == "" {
		matches, err := s.sources.SearchCompanies(ctx, code)
		if err != nil {
			s.log.Warn().Err(err).Str("code", code).Msg("company search failed")
		} else if len(matches) > 0 {
			edinetCode = matches[0].EdinetCode
			companyName = matches[0].Name
		}
	}

	var (
		stmtOut  fetcher.Outcome[*edinet.Statements]
		discOut  fetcher.Outcome[[]tdnet.Disclosure]
		priceOut fetcher.Outcome[*stockprice.Quote]
	)
	withStatements := edinetCode != ""

	var wg sync.WaitGroup
	if withStatements {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stmtOut = fetcher.Guard(ctx, s.timeout, func(ctx context.Context) (*edinet.Statements, error) {
				return s.sources.CompanyStatements(ctx, edinetCode, period)
			})
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		discOut = fetcher.Guard(ctx, s.timeout, func(ctx context.Context) ([]tdnet.Disclosure, error) {
			return s.sources.CompanyDisclosures(ctx, code, disclosureLimit)
		})
	}()
	wg.Add(1)
	go func() {
		defer wg.Done()
		priceOut = fetcher.Guard(ctx, s.timeout, func(ctx context.Context) (*stockprice.Quote, error) {
			return s.sources.StockPrice(ctx, code)
		})
	}()
	wg.Wait()

	result := CompanyAnalysis{
		Code:        code,
		EdinetCode:  edinetCode,
		Disclosures: []tdnet.Disclosure{},
		SourcesUsed: []string{},
	}

	// Outcomes are folded in registration order: statements, disclosures,
	// stock price. sources_used order is therefore deterministic.
	if withStatements {
		if !stmtOut.OK() {
			s.warnOutcome("statements", stmtOut.Status, stmtOut.Err)
		} else if stmtOut.Value != nil {
			result.Statements = stmtOut.Value
			result.SourcesUsed = append(result.SourcesUsed, fetcher.SourceEdinet)
			if companyName == "" {
				companyName = stmtOut.Value.CompanyName
			}
		}
	}

	if !discOut.OK() {
		s.warnOutcome("disclosures", discOut.Status, discOut.Err)
	} else if len(discOut.Value) > 0 {
		result.Disclosures = discOut.Value
		result.SourcesUsed = append(result.SourcesUsed, fetcher.SourceTdnet)
		if companyName == "" {
			companyName = discOut.Value[0].CompanyName
		}
	}

	if !priceOut.OK() {
		s.warnOutcome("stock price", priceOut.Status, priceOut.Err)
	} else if priceOut.Value != nil {
		result.StockPrice = priceOut.Value
		result.SourcesUsed = append(result.SourcesUsed, fetcher.SourceStock)
	}

	result.CompanyName = companyName
	return result
}

// MacroSnapshot searches e-Stat statistics tables for a keyword. Zero
// values default to DefaultKeyword and DefaultEstatLimit.
func (s *Service) MacroSnapshot(ctx context.Context, keyword string, estatLimit int) MacroSnapshot {
	if keyword == "" {
		keyword = DefaultKeyword
	}
	if estatLimit <= 0 {
		estatLimit = DefaultEstatLimit
	}

	out := fetcher.Guard(ctx, s.timeout, func(ctx context.Context) ([]estat.Table, error) {
		return s.sources.SearchStats(ctx, keyword, estatLimit)
	})

	snapshot := MacroSnapshot{
		EstatData:   []estat.Table{},
		SourcesUsed: []string{},
	}
	if !out.OK() {
		s.warnOutcome("e-Stat", out.Status, out.Err)
	} else if len(out.Value) > 0 {
		snapshot.EstatData = out.Value
		snapshot.SourcesUsed = append(snapshot.SourcesUsed, fetcher.SourceEstat)
	}
	return snapshot
}

// EarningsMonitor fetches disclosures concurrently for every code in the
// watchlist. Input order and duplicates are preserved; codes are processed
// independently. The tdnet source is recorded iff any disclosures arrived
// across the whole watchlist.
func (s *Service) EarningsMonitor(ctx context.Context, codes []string, disclosureLimit int) EarningsMonitor {
	if disclosureLimit <= 0 {
		disclosureLimit = DefaultMonitorLimit
	}

	outs := make([]fetcher.Outcome[[]tdnet.Disclosure], len(codes))
	var wg sync.WaitGroup
	for i, code := range codes {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			outs[i] = fetcher.Guard(ctx, s.timeout, func(ctx context.Context) ([]tdnet.Disclosure, error) {
				return s.sources.CompanyDisclosures(ctx, code, disclosureLimit)
			})
		}(i, code)
	}
	wg.Wait()

	companies := make([]EarningsEntry, 0, len(codes))
	total := 0
	for i, code := range codes {
		disclosures := []tdnet.Disclosure{}
		if !outs[i].OK() {
			s.log.Warn().Err(outs[i].Err).Str("code", code).Msg("watchlist fetch failed")
		} else if outs[i].Value != nil {
			disclosures = outs[i].Value
		}

		companyName := ""
		if len(disclosures) > 0 {
			companyName = disclosures[0].CompanyName
			total += len(disclosures)
		}

		companies = append(companies, EarningsEntry{
			Code:        code,
			CompanyName: companyName,
			Disclosures: disclosures,
		})
	}

	sourcesUsed := []string{}
	if total > 0 {
		sourcesUsed = append(sourcesUsed, fetcher.SourceTdnet)
	}
	return EarningsMonitor{
		Companies:        companies,
		TotalDisclosures: total,
		SourcesUsed:      sourcesUsed,
	}
}

func (s *Service) warnOutcome(what string, status fetcher.Status, err error) {
	s.log.Warn().Err(err).Str("status", string(status)).Msgf("%s fetch failed", what)
}
