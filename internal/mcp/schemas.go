package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// parseHTMLToChunksTool returns the tool definition for parse_html_to_chunks
func parseHTMLToChunksTool() mcp.Tool {
	return mcp.Tool{
		Name:        "parse_html_to_chunks",
		Description: "Decompose lesson HTML into an ordered sequence of typed, independently editable chunks",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"html": map[string]interface{}{
					"type":        "string",
					"description": "Lesson HTML fragment as retrieved from content storage (may be malformed; blank input yields an empty sequence)",
				},
			},
			Required: []string{"html"},
		},
	}
}

// chunksToHTMLTool returns the tool definition for chunks_to_html
func chunksToHTMLTool() mcp.Tool {
	return mcp.Tool{
		Name:        "chunks_to_html",
		Description: "Compose an ordered (possibly edited or reordered) chunk sequence back into one HTML string for storage",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"chunks": map[string]interface{}{
					"type":        "array",
					"description": "Ordered chunk sequence; order defines the composed document",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"id": map[string]interface{}{
								"type":        "string",
								"description": "Ephemeral chunk identifier (ignored by the composer)",
							},
							"type": map[string]interface{}{
								"type":        "string",
								"description": "Semantic chunk type",
								"enum": []string{
									"text", "heading", "image", "video",
									"list", "quote", "callout", "table",
								},
							},
							"content": map[string]interface{}{
								"type":        "string",
								"description": "Self-contained HTML fragment for this chunk",
							},
						},
						"required": []string{"content"},
					},
				},
			},
			Required: []string{"chunks"},
		},
	}
}

// parseHTMLBatchTool returns the tool definition for parse_html_batch
func parseHTMLBatchTool() mcp.Tool {
	return mcp.Tool{
		Name:        "parse_html_batch",
		Description: "Decompose multiple lesson pages concurrently, returning per-document chunk sequences and aggregate statistics",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"documents": map[string]interface{}{
					"type":        "array",
					"description": "Documents to decompose",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"name": map[string]interface{}{
								"type":        "string",
								"description": "Caller-supplied document label echoed in the result",
							},
							"html": map[string]interface{}{
								"type":        "string",
								"description": "Lesson HTML fragment",
							},
						},
						"required": []string{"html"},
					},
				},
				"workers": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum concurrent decompositions (default: CHUNKPARSE_WORKERS or NumCPU)",
					"minimum":     1,
					"maximum":     64,
				},
			},
			Required: []string{"documents"},
		},
	}
}
