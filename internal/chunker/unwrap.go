package chunker

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/lessonforge/chunkparse-mcp/internal/parser"
)

// inlineTags are tags that participate in inline runs rather than forming
// blocks of their own.
var inlineTags = map[string]bool{
	"span": true, "a": true, "strong": true, "b": true, "em": true,
	"i": true, "u": true, "s": true, "del": true, "mark": true,
	"small": true, "sub": true, "sup": true, "code": true, "abbr": true,
	"cite": true, "br": true, "wbr": true, "time": true, "data": true,
	"var": true, "kbd": true, "samp": true,
}

// containerTags are structural wrappers that may be dissolved into their
// children.
var containerTags = map[string]bool{
	"div": true, "section": true, "article": true, "main": true,
	"aside": true, "header": true, "footer": true, "nav": true,
}

// isInline reports whether a node joins an inline run: any text node, or an
// element whose tag is inline-level.
func isInline(n *html.Node) bool {
	if parser.IsText(n) {
		return true
	}
	return parser.IsElement(n) && inlineTags[parser.TagName(n)]
}

// countBlockChildren counts direct children that are block-level elements.
func countBlockChildren(n *html.Node) int {
	count := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if parser.IsElement(c) && !inlineTags[parser.TagName(c)] {
			count++
		}
	}
	return count
}

// hasInlineContent reports whether n has a direct child that would contribute
// to an inline run: a non-whitespace text node or an inline element with
// renderable content.
func hasInlineContent(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if parser.IsText(c) && strings.TrimSpace(c.Data) != "" {
			return true
		}
		if parser.IsElement(c) && inlineTags[parser.TagName(c)] && !skippable(c) {
			return true
		}
	}
	return false
}

// isMediaWrapper reports whether a container wraps exactly one media element
// somewhere in its subtree (the captioned media wrapper pattern).
func isMediaWrapper(n *html.Node) bool {
	return len(mediaDescendants(n)) == 1
}

// shouldUnwrap decides whether a structural container is dissolved into its
// children instead of kept as one opaque chunk. Containers wrapping more than
// one block must split so the editor can manipulate each block independently.
// Containers mixing one block with real inline content split too, except for
// media wrappers: splitting those would orphan the media from its caption, so
// they survive as a single image or video chunk.
func shouldUnwrap(n *html.Node) bool {
	if !containerTags[parser.TagName(n)] {
		return false
	}

	blocks := countBlockChildren(n)
	if blocks > 1 {
		return true
	}
	return blocks == 1 && hasInlineContent(n) && !isMediaWrapper(n)
}
