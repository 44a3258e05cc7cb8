package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"japanfinagent/internal/analysis"
	"japanfinagent/internal/validate"
)

func newMacroCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "macro",
		Short: "Macro economic snapshot (e-Stat statistics)",
		Long: `Search e-Stat government statistics tables for a keyword.

Examples:

  japanfinagent macro

  japanfinagent macro -k CPI --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keyword, _ := cmd.Flags().GetString("keyword")
			if err := validate.Keyword(keyword); err != nil {
				return err
			}
			limit, _ := cmd.Flags().GetInt("limit")

			result := app.Analysis.MacroSnapshot(cmd.Context(), keyword, limit)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Keyword: %s\n", keyword)
			fmt.Fprintf(out, "Sources: %s\n\n", sourcesLine(result.SourcesUsed))
			if len(result.EstatData) > 0 {
				fmt.Fprintf(out, "--- e-Stat (%d tables) ---\n", len(result.EstatData))
				for _, t := range result.EstatData {
					fmt.Fprintf(out, "  [%s] %s\n", t.StatsID, t.Title)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringP("keyword", "k", analysis.DefaultKeyword, "e-Stat search keyword")
	cmd.Flags().Int("limit", analysis.DefaultEstatLimit, "max e-Stat tables")

	return cmd
}
