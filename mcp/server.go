package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/steve-cse/keralam-mcp-server/api"
)

// Server represents the MCP server for keralam
type Server struct {
	server  *server.MCPServer
	monitor *api.Monitor
}

// NewServer creates a new MCP server instance
func NewServer(monitor *api.Monitor) *Server {
	s := server.NewMCPServer("Keralam AI Server", api.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithRecovery(),
	)

	registerTools(s, monitor)
	registerResources(s, monitor)

	return &Server{
		server:  s,
		monitor: monitor,
	}
}

// Run starts the MCP server on stdio
func (s *Server) Run() error {
	return server.ServeStdio(s.server)
}

// registerTools registers all available tools with the MCP server
func registerTools(s *server.MCPServer, monitor *api.Monitor) {
	tools := InitTools(monitor)
	s.AddTools(tools...)
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
