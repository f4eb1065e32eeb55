package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/profscout/internal/adapters/driven/config/file"
	"github.com/custodia-labs/profscout/internal/adapters/driving/mcp"
	"github.com/custodia-labs/profscout/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Examples:
  # Stdio mode (default, for Claude Desktop)
  profscout mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  profscout mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "profscout": {
        "command": "/path/to/profscout",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Ingest:    ingestService,
		Search:    profileSearchService,
		Directory: directoryService,
		Runs:      runStore,
	})
	if err != nil {
		return err
	}

	// Rebuild the service stack when the config file changes, so edited
	// API keys apply without restarting the server. The server swaps to
	// the fresh set atomically; in-flight handlers finish on the old one.
	if cs, ok := configStore.(*file.ConfigStore); ok {
		watcher, werr := file.NewWatcher(cs, func() {
			if err := initServices(); err != nil {
				logger.Warn("Service rewire after config change failed: %v", err)
				return
			}
			err := server.Rewire(&mcp.Ports{
				Ingest:    ingestService,
				Search:    profileSearchService,
				Directory: directoryService,
				Runs:      runStore,
			})
			if err != nil {
				logger.Warn("Service rewire after config change failed: %v", err)
			}
		})
		if werr != nil {
			logger.Warn("Config watching disabled: %v", werr)
		} else {
			defer watcher.Close() //nolint:errcheck
		}
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
