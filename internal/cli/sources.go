package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"japanfinagent/internal/adapters"
)

// defaultLatestLimit bounds the cross-company disclosure feed.
const defaultLatestLimit = 20

func newLatestCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Show the latest TDnet disclosures across all companies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			ctx, cancel := context.WithTimeout(cmd.Context(), app.Config.FetchTimeout)
			defer cancel()

			disclosures, err := app.Sources.LatestDisclosures(ctx, limit)
			if err != nil {
				// Absorbed like any provider failure: report, don't fail.
				disclosures = nil
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd, disclosures)
			}

			out := cmd.OutOrStdout()
			if len(disclosures) == 0 {
				fmt.Fprintln(out, "No disclosures available")
				return nil
			}
			fmt.Fprintf(out, "--- Latest Disclosures (%d) ---\n", len(disclosures))
			for _, d := range disclosures {
				fmt.Fprintf(out, "  [%s] %s %s: %s\n", d.Category, d.Pubdate, d.CompanyName, d.Title)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", defaultLatestLimit, "max disclosures to fetch")

	return cmd
}

func newDatasetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dataset NAME",
		Short: "Fetch a BOJ dataset (e.g. tankan, money_stock)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), app.Config.FetchTimeout)
			defer cancel()

			dataset, err := app.Sources.BojDataset(ctx, args[0])
			if err != nil {
				dataset = nil
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd, dataset)
			}

			out := cmd.OutOrStdout()
			if dataset == nil {
				fmt.Fprintf(out, "No data for dataset %q\n", args[0])
				return nil
			}
			fmt.Fprintf(out, "Dataset: %s\n", dataset.Name)
			if len(dataset.Shape) == 2 {
				fmt.Fprintf(out, "Shape: %d rows x %d columns\n", dataset.Shape[0], dataset.Shape[1])
			}
			if len(dataset.Columns) > 0 {
				fmt.Fprintf(out, "Columns: %s\n", strings.Join(dataset.Columns, ", "))
			}
			if len(dataset.DateRange) == 2 {
				fmt.Fprintf(out, "Date range: %s .. %s\n", dataset.DateRange[0], dataset.DateRange[1])
			}
			for _, row := range dataset.Sample {
				fmt.Fprintf(out, "  %v\n", row)
			}
			return nil
		},
	}
}

func newTestCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Test connectivity to all data sources",
		Long: `Check which data sources are configured and perform one minimal
live call against each configured source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "japanfinagent v%s\n\n", Version)

			available := app.Sources.CheckAvailableSources()
			fmt.Fprintln(out, "Data source availability:")
			for _, source := range adapters.Order {
				status := "[MISS]"
				if available[source] {
					status = "[OK]  "
				}
				fmt.Fprintf(out, "  %s %s\n", status, source)
			}

			fmt.Fprintln(out, "\nTesting connections...")
			ctx, cancel := context.WithTimeout(cmd.Context(), app.Config.FetchTimeout)
			defer cancel()
			results := app.Sources.TestConnections(ctx)
			for _, source := range adapters.Order {
				icon := "[FAIL]"
				if strings.HasPrefix(results[source], "ok") {
					icon = "[OK]  "
				}
				fmt.Fprintf(out, "  %s %s: %s\n", icon, source, results[source])
			}
			return nil
		},
	}
}
