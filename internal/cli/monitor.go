package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"japanfinagent/internal/analysis"
	"japanfinagent/internal/validate"
)

func newMonitorCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "monitor CODE...",
		Short: "Monitor earnings for a watchlist (TDnet disclosures)",
		Long: `Fetch recent TDnet disclosures for up to 20 companies in parallel.

Examples:

  japanfinagent monitor 7203 6758 6861

  japanfinagent monitor 7203 6758 --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validate.Watchlist(args); err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")

			result := app.Analysis.EarningsMonitor(cmd.Context(), args, limit)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Monitoring %d companies\n", len(args))
			fmt.Fprintf(out, "Total disclosures: %d\n\n", result.TotalDisclosures)
			for _, entry := range result.Companies {
				name := entry.CompanyName
				if name == "" {
					name = entry.Code
				}
				fmt.Fprintf(out, "--- %s (%s) ---\n", name, entry.Code)
				if len(entry.Disclosures) == 0 {
					fmt.Fprintln(out, "  No recent disclosures")
				}
				for i, d := range entry.Disclosures {
					if i >= 3 {
						break
					}
					fmt.Fprintf(out, "  [%s] %s\n", d.Category, d.Title)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", analysis.DefaultMonitorLimit, "max disclosures per company")

	return cmd
}
