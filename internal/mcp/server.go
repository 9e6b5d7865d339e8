// Package mcp exposes the classification and duty primitives as callable
// tools over the Model Context Protocol, so external agents can invoke them
// with schema-validated payloads. The conversational agent itself lives
// outside this service.
package mcp

import (
	"github.com/importworks/hts-helpers/internal/classify"
	"github.com/importworks/hts-helpers/internal/usitc"

	"github.com/mark3labs/mcp-go/server"
)

// Server wraps the MCP server with the tariff service dependencies
type Server struct {
	classifier *classify.Classifier
	searcher   usitc.Searcher
	mcpServer  *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(classifier *classify.Classifier, searcher usitc.Searcher) *Server {
	s := &Server{
		classifier: classifier,
		searcher:   searcher,
	}

	s.mcpServer = server.NewMCPServer(
		"hts-helpers",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *Server) Server() *server.MCPServer {
	return s.mcpServer
}
