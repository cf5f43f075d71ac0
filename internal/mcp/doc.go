// Package mcp exposes the HTML/chunk converter to the block-based editor UI
// as MCP tools over stdio.
//
// Three tools are registered:
//
//   - parse_html_to_chunks: one HTML string in, an ordered JSON chunk
//     sequence out. Never fails on string input; malformed markup degrades
//     per the chunker's fallback rules.
//   - chunks_to_html: an ordered (possibly edited, reordered, or pruned)
//     chunk sequence in, one HTML string out, ready to persist to content
//     storage.
//   - parse_html_batch: decomposes many lesson pages concurrently under a
//     worker cap and reports aggregate statistics.
//
// Parameter-shape violations (missing html, non-string html, chunks without
// content) surface as MCPError values with JSON-RPC-style codes; the
// conversion itself has no error states.
package mcp
