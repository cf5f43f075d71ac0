package chunker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lessonforge/chunkparse-mcp/pkg/types"
)

func TestChunksToHTML_Empty(t *testing.T) {
	c := New()
	assert.Equal(t, "", c.ChunksToHTML(nil))
	assert.Equal(t, "", c.ChunksToHTML([]types.Chunk{}))
}

func TestChunksToHTML_JoinsWithNewlines(t *testing.T) {
	c := New()
	out := c.ChunksToHTML([]types.Chunk{
		{Content: "<p>a</p>"},
		{Content: "<h2>b</h2>"},
	})
	assert.Equal(t, "<p>a</p>\n<h2>b</h2>", out)
}

func TestChunksToHTML_RespectsEditorReordering(t *testing.T) {
	c := New()
	chunks := c.ParseHTMLToChunks("<h2>Title</h2><p>Body</p>")
	require.Len(t, chunks, 2)

	// The editor owns the sequence: swap, edit, insert.
	chunks[0], chunks[1] = chunks[1], chunks[0]
	chunks = append(chunks, types.Chunk{
		ID:      "chunk-editor-inserted",
		Type:    types.ChunkText,
		Content: "<p>appended</p>",
	})

	out := c.ChunksToHTML(chunks)
	assert.Equal(t, "<p>Body</p>\n<h2>Title</h2>\n<p>appended</p>", out)
}

func TestChunksToHTML_SingleChunkHasNoSeparator(t *testing.T) {
	c := New()
	out := c.ChunksToHTML([]types.Chunk{{Content: "<p>solo</p>"}})
	assert.Equal(t, "<p>solo</p>", out)
}
