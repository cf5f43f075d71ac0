package chunker

import (
	"strings"

	"github.com/lessonforge/chunkparse-mcp/pkg/types"
)

// ChunksToHTML concatenates an ordered chunk sequence back into one HTML
// string, newline-separated for readability of the stored markup. The
// sequence may have been reordered, edited, or pruned by the editor; the
// composer takes it at face value. An empty sequence composes to "".
//
// The round trip through ParseHTMLToChunks is semantic, not byte-identical:
// whitespace normalization, serializer attribute formatting, and the
// synthesized <p> wrapping of merged inline runs are all lossy with respect
// to the original formatting.
func (c *Chunker) ChunksToHTML(chunks []types.Chunk) string {
	if len(chunks) == 0 {
		return ""
	}

	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		parts = append(parts, chunk.Content)
	}
	return strings.Join(parts, "\n")
}
