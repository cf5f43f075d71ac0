package chunker

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/lessonforge/chunkparse-mcp/internal/parser"
	"github.com/lessonforge/chunkparse-mcp/pkg/types"
)

// mediaTags are elements that render media on their own.
var mediaTags = map[string]bool{
	"img":    true,
	"iframe": true,
	"video":  true,
}

// classify maps one element to its chunk type. It is total: every tag
// resolves to a type, defaulting to text. Only the element's own tag and its
// descendants are consulted, never sibling context.
func classify(n *html.Node) types.ChunkType {
	switch tag := parser.TagName(n); tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return types.ChunkHeading
	case "ul", "ol":
		return types.ChunkList
	case "blockquote":
		return types.ChunkQuote
	case "details":
		return types.ChunkCallout
	case "table":
		return types.ChunkTable
	case "figure":
		if hasMediaDescendant(n, "img") {
			return types.ChunkImage
		}
		if hasMediaDescendant(n, "iframe") || hasMediaDescendant(n, "video") {
			return types.ChunkVideo
		}
		return types.ChunkText
	case "img":
		return types.ChunkImage
	case "iframe", "video":
		return types.ChunkVideo
	default:
		// Captioned media wrapper: a structural container around exactly one
		// media element classifies as that media's kind. Containers with more
		// than one block child never reach classification (they unwrap), so
		// only the media count matters here.
		if containerTags[tag] {
			if media := mediaDescendants(n); len(media) == 1 {
				return mediaKind(parser.TagName(media[0]))
			}
		}
		return types.ChunkText
	}
}

// mediaKind maps a media element tag to its chunk type.
func mediaKind(tag string) types.ChunkType {
	if tag == "img" {
		return types.ChunkImage
	}
	return types.ChunkVideo
}

// mediaDescendants collects all media elements in n's subtree, in document order.
func mediaDescendants(n *html.Node) []*html.Node {
	var media []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !parser.IsElement(c) {
			continue
		}
		if mediaTags[parser.TagName(c)] {
			media = append(media, c)
			continue
		}
		media = append(media, mediaDescendants(c)...)
	}
	return media
}

// hasMediaDescendant reports whether n's subtree contains an element with the
// given tag.
func hasMediaDescendant(n *html.Node, tag string) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if parser.IsElement(c) && (parser.TagName(c) == tag || hasMediaDescendant(c, tag)) {
			return true
		}
	}
	return false
}

// skippable reports whether an element renders nothing worth chunking: empty
// text after trimming, no self-rendering tag of its own, and no media or rule
// descendants. Emitting such elements would hand the editor blank chunks.
func skippable(n *html.Node) bool {
	switch parser.TagName(n) {
	case "hr", "br", "img", "iframe", "video":
		return false
	}
	if strings.TrimSpace(parser.Text(n)) != "" {
		return false
	}
	return !hasVisibleDescendant(n)
}

// hasVisibleDescendant reports whether the subtree contains an element that
// renders without text content.
func hasVisibleDescendant(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !parser.IsElement(c) {
			continue
		}
		switch parser.TagName(c) {
		case "img", "iframe", "video", "hr":
			return true
		}
		if hasVisibleDescendant(c) {
			return true
		}
	}
	return false
}
