// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to store and recall facts via stdio
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/harper/recall/internal/mcp"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs recall as an MCP (Model Context Protocol) server over stdio,
exposing ingest_fact, ask, lookup_facts, and forget_facts tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  recall mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "recall": {
  #       "command": "recall",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	svc, err := setupServices(cmd.Context())
	if err != nil {
		return err
	}

	server := mcpserver.NewMCPServer("Recall Fact Store", versionInfo.Version)
	mcp.RegisterTools(server, svc.engine, svc.store)

	if !quiet {
		fmt.Fprintln(cmd.ErrOrStderr(), "Recall MCP server starting on stdio...")
	}
	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("MCP server: %w", err)
	}
	return nil
}
