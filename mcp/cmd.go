package mcp

import (
	"github.com/spf13/cobra"

	"github.com/steve-cse/keralam-mcp-server/api"
	"github.com/steve-cse/keralam-mcp-server/api/feed"
)

// Command returns the MCP server command
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		RunE:  runMCP,
	}
}

func runMCP(cmd *cobra.Command, args []string) error {
	monitor := api.NewMonitor(feed.NewClient())
	server := NewServer(monitor)
	return server.Run()
}
