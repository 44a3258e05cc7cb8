package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"japanfinagent/internal/analysis"
	"japanfinagent/internal/boj"
	"japanfinagent/internal/fetcher"
)

func TestNewServer_ValidatesPorts(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{"all ports set", testPorts(), nil},
		{"missing analysis", &Ports{Probe: &mockProbe{}}, ErrMissingAnalysis},
		{"missing probe", &Ports{Analysis: &mockAnalyzer{}}, ErrMissingProbe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, err := NewServer(tt.ports)
			if tt.wantErr == nil {
				require.NoError(t, err)
				require.NotNil(t, server)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, server)
		})
	}
}

func TestHandleAnalyze(t *testing.T) {
	analyzer := &mockAnalyzer{
		analyzeFunc: func(ctx context.Context, code, edinetCode, period string, disclosureLimit int) analysis.CompanyAnalysis {
			return analysis.CompanyAnalysis{
				Code:        code,
				EdinetCode:  edinetCode,
				CompanyName: "トヨタ自動車株式会社",
				SourcesUsed: []string{"edinet", "tdnet", "stock"},
			}
		},
	}
	server, err := NewServer(&Ports{Analysis: analyzer, Probe: &mockProbe{}})
	require.NoError(t, err)

	_, result, err := server.handleAnalyze(context.Background(), nil, AnalyzeInput{
		Code:       "7203",
		EdinetCode: "E02144",
		Period:     "2024",
	})
	require.NoError(t, err)
	assert.Equal(t, "7203", result.Code)
	assert.Equal(t, "E02144", result.EdinetCode)
	assert.Equal(t, []string{"edinet", "tdnet", "stock"}, result.SourcesUsed)
}

func TestHandleAnalyze_RejectsInvalidInput(t *testing.T) {
	server, err := NewServer(testPorts())
	require.NoError(t, err)

	tests := []struct {
		name  string
		input AnalyzeInput
	}{
		{"short code", AnalyzeInput{Code: "720"}},
		{"non-numeric code", AnalyzeInput{Code: "72O3"}},
		{"empty code", AnalyzeInput{Code: ""}},
		{"bad edinet code", AnalyzeInput{Code: "7203", EdinetCode: "X12345"}},
		{"bad period", AnalyzeInput{Code: "7203", Period: "24"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := server.handleAnalyze(context.Background(), nil, tt.input)
			require.Error(t, err)
			assert.True(t, fetcher.IsValidation(err), "want a validation error, got %v", err)
		})
	}
}

func TestHandleMacro_DefaultsKeyword(t *testing.T) {
	var gotKeyword string
	analyzer := &mockAnalyzer{
		macroFunc: func(ctx context.Context, keyword string, estatLimit int) analysis.MacroSnapshot {
			gotKeyword = keyword
			return analysis.MacroSnapshot{SourcesUsed: []string{"estat"}}
		},
	}
	server, err := NewServer(&Ports{Analysis: analyzer, Probe: &mockProbe{}})
	require.NoError(t, err)

	_, result, err := server.handleMacro(context.Background(), nil, MacroInput{})
	require.NoError(t, err)
	assert.Equal(t, analysis.DefaultKeyword, gotKeyword)
	assert.Equal(t, []string{"estat"}, result.SourcesUsed)
}

func TestHandleMacro_RejectsOverlongKeyword(t *testing.T) {
	server, err := NewServer(testPorts())
	require.NoError(t, err)

	_, _, err = server.handleMacro(context.Background(), nil, MacroInput{
		Keyword: strings.Repeat("あ", 201),
	})
	require.Error(t, err)
	assert.True(t, fetcher.IsValidation(err))
}

func TestHandleMonitor(t *testing.T) {
	analyzer := &mockAnalyzer{
		monitorFunc: func(ctx context.Context, codes []string, disclosureLimit int) analysis.EarningsMonitor {
			return analysis.EarningsMonitor{
				TotalDisclosures: len(codes),
				SourcesUsed:      []string{"tdnet"},
			}
		},
	}
	server, err := NewServer(&Ports{Analysis: analyzer, Probe: &mockProbe{}})
	require.NoError(t, err)

	_, result, err := server.handleMonitor(context.Background(), nil, MonitorInput{
		Codes: []string{"7203", "9984"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalDisclosures)
}

func TestHandleMonitor_RejectsInvalidWatchlist(t *testing.T) {
	server, err := NewServer(testPorts())
	require.NoError(t, err)

	oversized := make([]string, 21)
	for i := range oversized {
		oversized[i] = "7203"
	}

	tests := []struct {
		name  string
		codes []string
	}{
		{"oversized watchlist", oversized},
		{"bad code in watchlist", []string{"7203", "banana"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := server.handleMonitor(context.Background(), nil, MonitorInput{Codes: tt.codes})
			require.Error(t, err)
			assert.True(t, fetcher.IsValidation(err))
		})
	}
}

func TestHandleDataset(t *testing.T) {
	probe := &mockProbe{
		bojDatasetFunc: func(ctx context.Context, name string) (*boj.Dataset, error) {
			return &boj.Dataset{Name: name, Columns: []string{"date", "value"}}, nil
		},
	}
	server, err := NewServer(&Ports{Analysis: &mockAnalyzer{}, Probe: probe})
	require.NoError(t, err)

	_, result, err := server.handleDataset(context.Background(), nil, DatasetInput{Name: "tankan"})
	require.NoError(t, err)
	require.NotNil(t, result.Dataset)
	assert.Equal(t, "tankan", result.Dataset.Name)
}

func TestHandleDataset_AbsorbsProviderError(t *testing.T) {
	probe := &mockProbe{
		bojDatasetFunc: func(ctx context.Context, name string) (*boj.Dataset, error) {
			return nil, errors.New("upstream down")
		},
	}
	server, err := NewServer(&Ports{Analysis: &mockAnalyzer{}, Probe: probe})
	require.NoError(t, err)

	_, result, err := server.handleDataset(context.Background(), nil, DatasetInput{Name: "tankan"})
	require.NoError(t, err)
	assert.Nil(t, result.Dataset)
}

func TestHandleCheckSources(t *testing.T) {
	probe := &mockProbe{
		testConnectionsFunc: func(ctx context.Context) map[string]string {
			return map[string]string{
				"edinet": "ok (1 results)",
				"tdnet":  "error: status 503",
				"estat":  "not installed",
			}
		},
	}
	server, err := NewServer(&Ports{Analysis: &mockAnalyzer{}, Probe: probe})
	require.NoError(t, err)

	_, result, err := server.handleCheckSources(context.Background(), nil, struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "ok (1 results)", result.Sources["edinet"])
	assert.Equal(t, "not installed", result.Sources["estat"])
}
