// Package chunker converts lesson-page HTML into an ordered sequence of
// typed, independently editable chunks, and composes edited sequences back
// into a single HTML string.
//
// # Basic Usage
//
//	c := chunker.New()
//	chunks := c.ParseHTMLToChunks(lessonHTML)
//
//	for _, chunk := range chunks {
//	    fmt.Printf("%s %s: %s\n", chunk.ID, chunk.Type, chunk.Content)
//	}
//
//	// ... editor reorders, edits, inserts, deletes ...
//
//	stored := c.ChunksToHTML(chunks)
//
// # Decomposition
//
// Decomposition walks the parsed tree depth-first, left to right, so chunk
// order is always the document's reading order. Three heuristics drive it:
//
//   - Classification: each element maps to exactly one chunk type (heading,
//     list, quote, callout, table, image, video, or the text default) from
//     its own tag and descendants alone.
//   - Container unwrap: a structural wrapper (div, section, article, ...)
//     holding more than one block-level child dissolves into its children;
//     with at most one block child it stays whole, which keeps captioned
//     media wrappers in a single image or video chunk.
//   - Inline merging: consecutive inline siblings (text, span, strong, a,
//     ...) accumulate into one synthesized <p> text chunk, flushed when a
//     block-level sibling interrupts the run.
//
// # Failure Semantics
//
// ParseHTMLToChunks never fails. Malformed markup rides on the html5
// parser's recovery rules. Blank input returns an empty sequence; any other
// input returns at least one chunk — when nothing is extractable the whole
// input becomes one opaque text chunk, so content is never silently dropped.
//
// # Identifiers
//
// Chunk IDs combine a per-call timestamp seed with a monotonic counter
// ("chunk-<seed>-<n>"). The counter lives in the call, not a package
// variable, so concurrent decompositions from separate editor sessions are
// safe and never observe each other's state.
package chunker
