package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	agentmcp "japanfinagent/internal/mcp"
)

func newServeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the Model Context Protocol server exposing the analysis tools.

By default the server communicates over stdio and can be used with Claude
Desktop and other MCP-compatible assistants. Use --port to serve HTTP
instead.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "japanfinance": {
        "command": "/path/to/japanfinagent",
        "args": ["serve"]
      }
    }
  }`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			port, _ := cmd.Flags().GetInt("port")

			server, err := agentmcp.NewServer(&agentmcp.Ports{
				Analysis: app.Analysis,
				Probe:    app.Sources,
			})
			if err != nil {
				return err
			}

			if port > 0 {
				addr := fmt.Sprintf(":%d", port)
				app.Logger.Info().Str("addr", addr).Msg("starting MCP server over HTTP")
				return server.RunHTTP(cmd.Context(), addr)
			}
			app.Logger.Info().Msg("starting MCP server over stdio")
			return server.Run(cmd.Context())
		},
	}

	cmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")

	return cmd
}
