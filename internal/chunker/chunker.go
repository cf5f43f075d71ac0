package chunker

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/lessonforge/chunkparse-mcp/internal/parser"
	"github.com/lessonforge/chunkparse-mcp/pkg/types"
)

// Chunker converts lesson HTML into ordered chunk sequences and back
type Chunker struct{}

// New creates a new Chunker instance
func New() *Chunker {
	return &Chunker{}
}

// idGen issues chunk identifiers for a single decomposition call. The counter
// is scoped to the call, so concurrent decompositions cannot interfere and
// identifier suffixes are reproducible per call. IDs are ephemeral and must
// not be persisted across re-parses.
type idGen struct {
	seed    int64
	counter int
}

func newIDGen() *idGen {
	return &idGen{seed: time.Now().UnixMilli()}
}

func (g *idGen) next() string {
	id := fmt.Sprintf("chunk-%d-%d", g.seed, g.counter)
	g.counter++
	return id
}

// ParseHTMLToChunks decomposes a lesson HTML fragment into an ordered chunk
// sequence. Blank or whitespace-only input yields an empty sequence. Any
// other input yields at least one chunk: when normal decomposition extracts
// nothing, the whole input degrades to a single opaque text chunk so content
// is never silently dropped. The function never fails; malformed markup is
// absorbed by the parser's recovery rules.
func (c *Chunker) ParseHTMLToChunks(content string) []types.Chunk {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return []types.Chunk{}
	}

	d := &decomposer{ids: newIDGen()}
	nodes, err := parser.ParseFragment(content)
	if err == nil {
		d.walkChildren(nodes)
	}

	if len(d.chunks) == 0 {
		d.emit(types.ChunkText, trimmed)
	}

	return d.chunks
}

// decomposer carries the per-call state of one decomposition: the identifier
// generator and the chunks emitted so far, in reading order.
type decomposer struct {
	ids    *idGen
	chunks []types.Chunk
}

func (d *decomposer) emit(t types.ChunkType, content string) {
	d.chunks = append(d.chunks, types.Chunk{
		ID:      d.ids.next(),
		Type:    t,
		Content: content,
	})
}

// walkChildren processes the ordered children of an unwrapped container (or
// the fragment's top level), merging runs of consecutive inline siblings into
// a single text chunk. The run flushes the moment a block-level child is
// reached, then that child is decomposed recursively, preserving reading
// order.
func (d *decomposer) walkChildren(children []*html.Node) {
	var run strings.Builder
	for _, child := range children {
		if isInline(child) {
			// Text-less inline elements contribute nothing; buffering them
			// would surface blank paragraphs in the editor.
			if parser.IsElement(child) && skippable(child) {
				continue
			}
			run.WriteString(inlineMarkup(child))
			continue
		}
		d.flushRun(&run)
		d.walkNode(child)
	}
	d.flushRun(&run)
}

// flushRun emits the accumulated inline markup as one synthesized paragraph.
// Whitespace-only runs (stray formatting between blocks) emit nothing.
func (d *decomposer) flushRun(run *strings.Builder) {
	markup := strings.TrimSpace(run.String())
	run.Reset()
	if markup == "" {
		return
	}
	d.emit(types.ChunkText, "<p>"+markup+"</p>")
}

// walkNode decomposes one block-level node: unwrap structural containers with
// multiple block children, skip elements that render nothing, and emit one
// classified chunk holding the full outer markup for everything else.
func (d *decomposer) walkNode(n *html.Node) {
	if !parser.IsElement(n) {
		// Comments and doctypes carry no editable content.
		return
	}
	if skippable(n) {
		return
	}
	if shouldUnwrap(n) {
		d.walkChildren(parser.Children(n))
		return
	}
	d.emit(classify(n), parser.Render(n))
}

// inlineMarkup returns the markup an inline node contributes to a merged run.
// Attribute-less <span> wrappers are dissolved to their inner markup, since
// they carry no information of their own; every other inline node keeps its
// outer markup verbatim.
func inlineMarkup(n *html.Node) string {
	if parser.IsElement(n) && parser.TagName(n) == "span" && len(n.Attr) == 0 {
		var b strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			b.WriteString(inlineMarkup(c))
		}
		return b.String()
	}
	return parser.Render(n)
}
