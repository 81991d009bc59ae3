package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	simplegitmcp "github.com/gorewood/simplegit/internal/mcp"
)

// newMCPCmd creates the mcp command for running as an MCP server.
func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run simplegit as a Model Context Protocol (MCP) server over stdio.

This exposes the repository's git operations as MCP tools that any
MCP-capable agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "simplegit": {
        "command": "simplegit",
        "args": ["mcp", "--repo", "/path/to/repo"]
      }
    }
  }

Read-only tools: status, changed_files, untracked_files, commit_history,
current_branch, local_branches. Destructive tools: reset,
delete_untracked_files, delete_branch.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repo, cfg, err := openRepo(cmd)
			if err != nil {
				return err
			}
			logger, err := cfg.NewLogger(cmd.ErrOrStderr(), "simplegit")
			if err != nil {
				return err
			}
			server := simplegitmcp.NewServer(buildVersion(), repo, logger)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
