package mcp

import (
	"context"
	"os"
	"runtime"
	"strconv"

	"github.com/mark3labs/mcp-go/server"

	"github.com/lessonforge/chunkparse-mcp/internal/chunker"
)

const (
	// ServerName is the MCP server name
	ServerName = "chunkparse-mcp"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// EnvWorkers overrides the worker cap for parse_html_batch
	EnvWorkers = "CHUNKPARSE_WORKERS"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp     *server.MCPServer
	chunker *chunker.Chunker
	workers int
}

// NewServer creates a new MCP server instance
func NewServer() (*Server, error) {
	workers := runtime.NumCPU()
	if v := os.Getenv(EnvWorkers); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			workers = n
		}
	}

	mcpServer := server.NewMCPServer(
		ServerName,
		ServerVersion,
	)

	s := &Server{
		mcp:     mcpServer,
		chunker: chunker.New(),
		workers: workers,
	}

	s.registerTools()

	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(parseHTMLToChunksTool(), s.handleParseHTMLToChunks)
	s.mcp.AddTool(chunksToHTMLTool(), s.handleChunksToHTML)
	s.mcp.AddTool(parseHTMLBatchTool(), s.handleParseHTMLBatch)
}
