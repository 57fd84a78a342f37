// ABOUTME: MCP server setup for the gym exercise store.
// ABOUTME: Wraps MCP server with Store access for tools and resources.
package mcp

import (
	"context"

	"github.com/harperreed/gym/internal/store"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer *mcp.Server
	store     *store.Store
}

// NewServer creates a new MCP server over the given store.
func NewServer(s *store.Store) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "gym",
			Version: "1.0.0",
		},
		nil,
	)

	srv := &Server{
		mcpServer: mcpServer,
		store:     s,
	}

	srv.registerTools()
	srv.registerResources()

	return srv, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
