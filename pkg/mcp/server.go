package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"smartlife/pkg/rpc"
)

// Server wraps the MCP server with the bridge's device control tool
type Server struct {
	mcpServer  *server.MCPServer
	dispatcher *rpc.Dispatcher
}

// NewServer creates a new MCP server exposing smartlife.control over stdio
func NewServer(dispatcher *rpc.Dispatcher) *Server {
	s := &Server{
		dispatcher: dispatcher,
	}

	s.mcpServer = server.NewMCPServer(
		"smartlife-bridge",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
