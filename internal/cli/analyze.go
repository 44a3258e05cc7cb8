package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"japanfinagent/internal/analysis"
	"japanfinagent/internal/validate"
)

// metricCategories is the display order for statement metrics.
var metricCategories = []string{"profitability", "stability", "efficiency", "growth"}

func newAnalyzeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze CODE",
		Short: "Analyze a company (EDINET + TDnet + stock price)",
		Long: `Analyze a company by combining EDINET financial statements, recent
TDnet disclosures and stock price data fetched in parallel.

Examples:

  japanfinagent analyze 7203

  japanfinagent analyze 7203 -e E02144 -p 2025 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			if err := validate.StockCode(code); err != nil {
				return err
			}

			edinetCode, _ := cmd.Flags().GetString("edinet-code")
			if edinetCode != "" {
				if err := validate.EdinetCode(edinetCode); err != nil {
					return err
				}
			}
			period, _ := cmd.Flags().GetString("period")
			if period != "" {
				if err := validate.Period(period); err != nil {
					return err
				}
			}
			limit, _ := cmd.Flags().GetInt("limit")

			result := app.Analysis.AnalyzeCompany(cmd.Context(), code, edinetCode, period, limit)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd, result)
			}
			renderAnalysis(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringP("edinet-code", "e", "", "EDINET code (e.g. E02144), resolved from CODE if omitted")
	cmd.Flags().StringP("period", "p", "", "filing year (e.g. 2025), defaults to the previous fiscal year")
	cmd.Flags().Int("limit", analysis.DefaultDisclosureLimit, "max disclosures to fetch")

	return cmd
}

func renderAnalysis(cmd *cobra.Command, result analysis.CompanyAnalysis) {
	out := cmd.OutOrStdout()

	name := result.CompanyName
	if name == "" {
		name = result.Code
	}
	fmt.Fprintf(out, "Company: %s\n", name)
	fmt.Fprintf(out, "Sources: %s\n\n", sourcesLine(result.SourcesUsed))

	if result.Statements != nil && len(result.Statements.Metrics) > 0 {
		fmt.Fprintln(out, "--- Financial Metrics ---")
		for _, category := range metricCategories {
			for key, val := range result.Statements.Metrics[category] {
				fmt.Fprintf(out, "  %s: %v\n", key, val)
			}
		}
		fmt.Fprintln(out)
	}

	if len(result.Disclosures) > 0 {
		fmt.Fprintf(out, "--- Recent Disclosures (%d) ---\n", len(result.Disclosures))
		for i, d := range result.Disclosures {
			if i >= 5 {
				break
			}
			fmt.Fprintf(out, "  [%s] %s\n", d.Category, d.Title)
			fmt.Fprintf(out, "    %s\n", d.Pubdate)
		}
		fmt.Fprintln(out)
	}

	if sp := result.StockPrice; sp != nil {
		fmt.Fprintln(out, "--- Stock Price ---")
		lastClose := "n/a"
		if sp.Close != nil {
			lastClose = fmt.Sprintf("%.1f", *sp.Close)
		}
		fmt.Fprintf(out, "  Date: %s, Close: %s\n", sp.Date, lastClose)
	}
}

func sourcesLine(sources []string) string {
	if len(sources) == 0 {
		return "none"
	}
	line := sources[0]
	for _, s := range sources[1:] {
		line += ", " + s
	}
	return line
}
