package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/guestmail/internal/logging"
	guestmailmcp "github.com/gorewood/guestmail/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run guestmail as a Model Context Protocol (MCP) server over stdio.

This exposes template management and email rendering as MCP tools that any
MCP-capable agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "guestmail": {
        "command": "guestmail",
        "args": ["serve"]
      }
    }
  }

Available tools: list_templates, show_template, required_fields,
render_email, add_template, update_template, delete_template`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openStore(cmd, nil)
			if err != nil {
				newPrinter(cmd).Error(err)
				return err
			}
			logger := logging.Component("mcp")
			logger.Info().Int("templates", store.Len()).Msg("serving on stdio")
			server := guestmailmcp.NewServer(buildVersion(), store, logger)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
