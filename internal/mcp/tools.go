package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"japanfinagent/internal/analysis"
	"japanfinagent/internal/boj"
	"japanfinagent/internal/validate"
)

// AnalyzeInput is the input schema for the company analysis tool.
type AnalyzeInput struct {
	Code       string `json:"code" jsonschema:"4-digit stock code, e.g. 7203 for Toyota"`
	EdinetCode string `json:"edinet_code,omitempty" jsonschema:"optional EDINET code, e.g. E02144, resolved from the stock code if omitted"`
	Period     string `json:"period,omitempty" jsonschema:"optional filing year for EDINET statements, e.g. 2025"`
}

// MacroInput is the input schema for the macro snapshot tool.
type MacroInput struct {
	Keyword string `json:"keyword,omitempty" jsonschema:"e-Stat search keyword, e.g. GDP, CPI, 雇用 (default GDP)"`
}

// MonitorInput is the input schema for the earnings monitor tool.
type MonitorInput struct {
	Codes []string `json:"codes" jsonschema:"list of 4-digit stock codes, at most 20"`
}

// DatasetInput is the input schema for the BOJ dataset tool.
type DatasetInput struct {
	Name string `json:"name" jsonschema:"BOJ dataset name, e.g. tankan or money_stock"`
}

// DatasetOutput wraps the fetched dataset; Dataset is absent when the
// source had no data or is not configured.
type DatasetOutput struct {
	Dataset *boj.Dataset `json:"dataset,omitempty"`
}

// SourcesOutput reports a status string per data source.
type SourcesOutput struct {
	Sources map[string]string `json:"sources"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "analyze_japanese_company",
		Description: "Comprehensive analysis of a Japanese company: EDINET financial statements, TDnet disclosures and stock price in a single view",
	}, s.handleAnalyze)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_macro_snapshot",
		Description: "Macro economic snapshot for Japan from e-Stat government statistics",
	}, s.handleMacro)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "monitor_earnings",
		Description: "Monitor recent TDnet disclosures for a watchlist of companies",
	}, s.handleMonitor)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_boj_dataset",
		Description: "Fetch a Bank of Japan dataset with a sample of recent rows",
	}, s.handleDataset)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_data_sources",
		Description: "Check which Japan finance data sources are configured and reachable",
	}, s.handleCheckSources)
}

func (s *Server) handleAnalyze(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnalyzeInput,
) (*mcp.CallToolResult, analysis.CompanyAnalysis, error) {
	if err := validate.StockCode(input.Code); err != nil {
		return nil, analysis.CompanyAnalysis{}, err
	}
	if input.EdinetCode != "" {
		if err := validate.EdinetCode(input.EdinetCode); err != nil {
			return nil, analysis.CompanyAnalysis{}, err
		}
	}
	if input.Period != "" {
		if err := validate.Period(input.Period); err != nil {
			return nil, analysis.CompanyAnalysis{}, err
		}
	}

	result := s.ports.Analysis.AnalyzeCompany(ctx, input.Code, input.EdinetCode, input.Period, 0)
	return nil, result, nil
}

func (s *Server) handleMacro(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MacroInput,
) (*mcp.CallToolResult, analysis.MacroSnapshot, error) {
	keyword := input.Keyword
	if keyword == "" {
		keyword = analysis.DefaultKeyword
	}
	if err := validate.Keyword(keyword); err != nil {
		return nil, analysis.MacroSnapshot{}, err
	}

	result := s.ports.Analysis.MacroSnapshot(ctx, keyword, 0)
	return nil, result, nil
}

func (s *Server) handleMonitor(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MonitorInput,
) (*mcp.CallToolResult, analysis.EarningsMonitor, error) {
	if err := validate.Watchlist(input.Codes); err != nil {
		return nil, analysis.EarningsMonitor{}, err
	}

	result := s.ports.Analysis.EarningsMonitor(ctx, input.Codes, 0)
	return nil, result, nil
}

func (s *Server) handleDataset(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DatasetInput,
) (*mcp.CallToolResult, DatasetOutput, error) {
	dataset, err := s.ports.Probe.BojDataset(ctx, input.Name)
	if err != nil {
		// Provider failures degrade to an absent dataset, as everywhere else.
		return nil, DatasetOutput{}, nil
	}
	return nil, DatasetOutput{Dataset: dataset}, nil
}

func (s *Server) handleCheckSources(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, SourcesOutput, error) {
	return nil, SourcesOutput{Sources: s.ports.Probe.TestConnections(ctx)}, nil
}
