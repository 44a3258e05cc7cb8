package mcp

import (
	"context"

	"japanfinagent/internal/analysis"
	"japanfinagent/internal/boj"
)

// Analyzer runs the compound aggregation operations.
type Analyzer interface {
	AnalyzeCompany(ctx context.Context, code, edinetCode, period string, disclosureLimit int) analysis.CompanyAnalysis
	MacroSnapshot(ctx context.Context, keyword string, estatLimit int) analysis.MacroSnapshot
	EarningsMonitor(ctx context.Context, codes []string, disclosureLimit int) analysis.EarningsMonitor
}

// SourceProbe covers the diagnostic and pass-through source operations.
type SourceProbe interface {
	TestConnections(ctx context.Context) map[string]string
	BojDataset(ctx context.Context, name string) (*boj.Dataset, error)
}

// Ports aggregates the interfaces the MCP server needs. This is the single
// injection point for the server's dependencies.
type Ports struct {
	Analysis Analyzer
	Probe    SourceProbe
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Analysis == nil {
		return ErrMissingAnalysis
	}
	if p.Probe == nil {
		return ErrMissingProbe
	}
	return nil
}
