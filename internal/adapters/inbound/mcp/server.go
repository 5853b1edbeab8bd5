package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewOrderSweepMCPServer creates an MCP server exposing read-only
// sweep tools. configPath points at the ordersweep.yaml roster (empty
// means the default lookup). The server never sends update calls:
// previews always run dry.
func NewOrderSweepMCPServer(configPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"ordersweep",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, configPath)

	return s
}
