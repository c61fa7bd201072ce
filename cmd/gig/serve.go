package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	gigmcp "github.com/gorewood/gig/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd(loadIndex indexLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run gig as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "gig": {
        "command": "gig",
        "args": ["serve"]
      }
    }
  }

Available tools: list, show, generate, check. None of them write files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, loadIndex)
			if err != nil {
				return err
			}
			a.log.Debug().Int("templates", a.index.Len()).Msg("serving MCP over stdio")
			server := gigmcp.NewServer(buildVersion(), a.index, a.policy)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
