package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdforacle/pdforacle/internal/adapters/driven/ai"
	"github.com/pdforacle/pdforacle/internal/adapters/driving/mcp"
	"github.com/pdforacle/pdforacle/internal/core/services"
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
  pdforacle mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  pdforacle mcp serve --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "pdforacle": {
        "command": "/path/to/pdforacle",
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

	indexer, embedding, err := buildIndexer()
	if err != nil {
		return err
	}
	defer embedding.Close()

	llm, err := ai.CreateLLMService(cfg)
	if err != nil {
		return err
	}
	defer llm.Close()

	ports := &mcp.Ports{
		Indexer:    indexer,
		Query:      services.NewQueryService(storeOpener(), embedding, llm),
		Library:    buildLibrary(),
		PersistDir: persistDir(),
		Collection: collection(),
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
