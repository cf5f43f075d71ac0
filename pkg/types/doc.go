// Package types provides shared type definitions for the chunkparse MCP server.
//
// This package defines the domain types exchanged between the HTML decomposer,
// the composer, and the editor-facing MCP tools.
//
// # Core Types
//
// Chunk represents one independently editable block of lesson content:
//
//	chunk := &types.Chunk{
//	    ID:      "chunk-1756166400000-0",
//	    Type:    types.ChunkHeading,
//	    Content: "<h2>Photosynthesis</h2>",
//	}
//
// ChunkType is a closed set of semantic block kinds: text, heading, image,
// video, list, quote, callout, and table. Classification is determined solely
// from a chunk's own root element, never from sibling context.
//
// # Identifier Lifetime
//
// Chunk IDs are ephemeral. They are generated fresh on every decomposition
// (a per-call timestamp seed plus a monotonic counter) and are stable only for
// the lifetime of one decomposed sequence. Callers must not persist them.
//
// # Validation
//
// Chunks implement validation methods used at the tool boundary:
//
//	if err := chunk.Validate(); err != nil {
//	    log.Printf("rejecting chunk: %v", err)
//	}
//
// Validation is deliberately absent from the decomposition path itself: the
// decomposer never fails and never emits an invalid chunk.
package types
