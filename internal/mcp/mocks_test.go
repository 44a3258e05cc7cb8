package mcp

import (
	"context"

	"japanfinagent/internal/analysis"
	"japanfinagent/internal/boj"
)

type mockAnalyzer struct {
	analyzeFunc func(ctx context.Context, code, edinetCode, period string, disclosureLimit int) analysis.CompanyAnalysis
	macroFunc   func(ctx context.Context, keyword string, estatLimit int) analysis.MacroSnapshot
	monitorFunc func(ctx context.Context, codes []string, disclosureLimit int) analysis.EarningsMonitor
}

func (m *mockAnalyzer) AnalyzeCompany(ctx context.Context, code, edinetCode, period string, disclosureLimit int) analysis.CompanyAnalysis {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, code, edinetCode, period, disclosureLimit)
	}
	return analysis.CompanyAnalysis{Code: code}
}

func (m *mockAnalyzer) MacroSnapshot(ctx context.Context, keyword string, estatLimit int) analysis.MacroSnapshot {
	if m.macroFunc != nil {
		return m.macroFunc(ctx, keyword, estatLimit)
	}
	return analysis.MacroSnapshot{}
}

func (m *mockAnalyzer) EarningsMonitor(ctx context.Context, codes []string, disclosureLimit int) analysis.EarningsMonitor {
	if m.monitorFunc != nil {
		return m.monitorFunc(ctx, codes, disclosureLimit)
	}
	return analysis.EarningsMonitor{}
}

type mockProbe struct {
	testConnectionsFunc func(ctx context.Context) map[string]string
	bojDatasetFunc      func(ctx context.Context, name string) (*boj.Dataset, error)
}

func (m *mockProbe) TestConnections(ctx context.Context) map[string]string {
	if m.testConnectionsFunc != nil {
		return m.testConnectionsFunc(ctx)
	}
	return map[string]string{}
}

func (m *mockProbe) BojDataset(ctx context.Context, name string) (*boj.Dataset, error) {
	if m.bojDatasetFunc != nil {
		return m.bojDatasetFunc(ctx, name)
	}
	return nil, nil
}

func testPorts() *Ports {
	return &Ports{
		Analysis: &mockAnalyzer{},
		Probe:    &mockProbe{},
	}
}
