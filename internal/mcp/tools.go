package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"golang.org/x/sync/errgroup"

	"github.com/lessonforge/chunkparse-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeInvalidChunk  = -32001 // A chunk in the sequence failed validation
	ErrorCodeEmptyBatch    = -32002 // Batch request contained no documents
)

// handleParseHTMLToChunks handles the parse_html_to_chunks tool invocation
func (s *Server) handleParseHTMLToChunks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	// Passing a non-string here is a programming error on the caller's side,
	// not a data-handling branch: any string, however malformed, succeeds.
	htmlContent, ok := args["html"].(string)
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "html parameter must be a string", map[string]interface{}{
			"param":  "html",
			"reason": "missing or not a string",
		})
	}

	chunks := s.chunker.ParseHTMLToChunks(htmlContent)

	response := map[string]interface{}{
		"chunks":      chunks,
		"chunk_count": len(chunks),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleChunksToHTML handles the chunks_to_html tool invocation
func (s *Server) handleChunksToHTML(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	rawChunks, ok := args["chunks"].([]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "chunks parameter must be an array", map[string]interface{}{
			"param":  "chunks",
			"reason": "missing or not an array",
		})
	}

	chunks, err := decodeChunks(rawChunks)
	if err != nil {
		return nil, err
	}

	composed := s.chunker.ChunksToHTML(chunks)

	response := map[string]interface{}{
		"html":        composed,
		"chunk_count": len(chunks),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// batchResult holds the outcome for one document in a batch decomposition.
type batchResult struct {
	Name       string        `json:"name,omitempty"`
	Chunks     []types.Chunk `json:"chunks"`
	ChunkCount int           `json:"chunk_count"`
}

// handleParseHTMLBatch handles the parse_html_batch tool invocation.
// Documents decompose concurrently; each call carries its own identifier
// counter, so parallel decompositions cannot interfere.
func (s *Server) handleParseHTMLBatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	rawDocs, ok := args["documents"].([]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "documents parameter must be an array", map[string]interface{}{
			"param":  "documents",
			"reason": "missing or not an array",
		})
	}
	if len(rawDocs) == 0 {
		return nil, newMCPError(ErrorCodeEmptyBatch, "documents array cannot be empty", nil)
	}

	type document struct {
		name string
		html string
	}
	docs := make([]document, 0, len(rawDocs))
	for i, raw := range rawDocs {
		item, ok := raw.(map[string]interface{})
		if !ok {
			return nil, newMCPError(ErrorCodeInvalidParams, "document must be an object", map[string]interface{}{
				"index": i,
			})
		}
		htmlContent, ok := item["html"].(string)
		if !ok {
			return nil, newMCPError(ErrorCodeInvalidParams, "document html must be a string", map[string]interface{}{
				"index":  i,
				"param":  "html",
				"reason": "missing or not a string",
			})
		}
		name, _ := item["name"].(string)
		docs = append(docs, document{name: name, html: htmlContent})
	}

	workers := getIntDefault(args, "workers", s.workers)
	if workers < 1 || workers > 64 {
		return nil, newMCPError(ErrorCodeInvalidParams, "workers must be between 1 and 64", map[string]interface{}{
			"param": "workers",
			"value": workers,
		})
	}

	startTime := time.Now()
	results := make([]batchResult, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, doc := range docs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			chunks := s.chunker.ParseHTMLToChunks(doc.html)
			results[i] = batchResult{
				Name:       doc.name,
				Chunks:     chunks,
				ChunkCount: len(chunks),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "batch decomposition canceled", map[string]interface{}{
			"error": err.Error(),
		})
	}

	parsed, blank, totalChunks := 0, 0, 0
	for _, r := range results {
		if r.ChunkCount == 0 {
			blank++
		} else {
			parsed++
		}
		totalChunks += r.ChunkCount
	}

	response := map[string]interface{}{
		"documents":        results,
		"documents_parsed": parsed,
		"documents_blank":  blank,
		"chunks_created":   totalChunks,
		"duration_ms":      time.Since(startTime).Milliseconds(),
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// decodeChunks converts raw tool arguments into a chunk sequence, validating
// that each entry carries content and, when present, a known type.
func decodeChunks(rawChunks []interface{}) ([]types.Chunk, error) {
	chunks := make([]types.Chunk, 0, len(rawChunks))
	for i, raw := range rawChunks {
		item, ok := raw.(map[string]interface{})
		if !ok {
			return nil, newMCPError(ErrorCodeInvalidParams, "chunk must be an object", map[string]interface{}{
				"index": i,
			})
		}

		content, ok := item["content"].(string)
		if !ok || content == "" {
			return nil, newMCPError(ErrorCodeInvalidChunk, "chunk content is required", map[string]interface{}{
				"index":  i,
				"param":  "content",
				"reason": "missing or empty",
			})
		}

		chunk := types.Chunk{Content: content}
		if id, ok := item["id"].(string); ok {
			chunk.ID = id
		}
		if ct, ok := item["type"].(string); ok && ct != "" {
			chunk.Type = types.ChunkType(ct)
			if err := chunk.ValidateChunkType(); err != nil {
				return nil, newMCPError(ErrorCodeInvalidChunk, "unknown chunk type", map[string]interface{}{
					"index": i,
					"value": ct,
				})
			}
		}

		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a response map as indented JSON
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}
