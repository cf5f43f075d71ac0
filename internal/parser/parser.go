package parser

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses an HTML fragment string into its top-level nodes.
//
// Parsing happens in a <body> insertion context, so the input does not need
// an <html>/<head>/<body> wrapper; a full document is tolerated too (its body
// children are returned). The underlying html5 parser error-recovers on
// malformed input (unclosed tags are auto-closed), so structurally invalid
// markup still yields a usable tree.
func ParseFragment(content string) ([]*html.Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	return html.ParseFragment(strings.NewReader(content), ctx)
}

// Render serializes a node (its tag, attributes, and all descendants) back to
// HTML. Rendering a text node escapes entities.
func Render(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		// html.Render only fails on writer errors or orphan node kinds the
		// parser never produces; a bytes.Buffer write cannot fail.
		return ""
	}
	return buf.String()
}

// Text returns the concatenated text of all descendant text nodes.
func Text(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}

// TagName returns the lowercase tag name of an element node, or "" for any
// other node kind. The net/html tokenizer already lowercases known tags; the
// explicit ToLower covers foreign-content and unknown elements.
func TagName(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(n.Data)
}

// IsElement reports whether n is an element node
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// IsText reports whether n is a text node
func IsText(n *html.Node) bool {
	return n != nil && n.Type == html.TextNode
}

// Children returns the ordered direct children of n as a slice.
func Children(n *html.Node) []*html.Node {
	var kids []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		kids = append(kids, c)
	}
	return kids
}
