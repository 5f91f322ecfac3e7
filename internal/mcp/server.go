// Package mcp exposes thread splitting as Model Context Protocol tools over stdio
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/server"

	"github.com/shivavenkatesh/threadsplit/internal/thread"
)

const (
	// ServerName is the MCP server name
	ServerName = "threadsplit"
	// ServerVersion is the current server version
	ServerVersion = "0.1.0"
)

// Server wraps the MCP server with the thread service
type Server struct {
	mcp *server.MCPServer
	svc thread.Service
}

// NewServer creates an MCP server with all tools registered
func NewServer(svc thread.Service) *Server {
	s := &Server{
		mcp: server.NewMCPServer(ServerName, ServerVersion),
		svc: svc,
	}

	s.mcp.AddTool(splitThreadTool(), s.handleSplitThread)
	s.mcp.AddTool(validateThreadTool(), s.handleValidateThread)

	return s
}

// Serve runs the MCP server on stdio until the client disconnects
func (s *Server) Serve(_ context.Context) error {
	return server.ServeStdio(s.mcp)
}
