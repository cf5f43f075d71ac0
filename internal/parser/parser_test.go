package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseFragment_TopLevelSiblings(t *testing.T) {
	nodes, err := ParseFragment("<h2>Cells</h2><p>Intro</p>")
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	assert.Equal(t, "h2", TagName(nodes[0]))
	assert.Equal(t, "p", TagName(nodes[1]))
}

func TestParseFragment_NoDocumentWrapperRequired(t *testing.T) {
	nodes, err := ParseFragment("plain text")
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.True(t, IsText(nodes[0]))
	assert.Equal(t, "plain text", nodes[0].Data)
}

func TestParseFragment_FullDocumentYieldsBodyChildren(t *testing.T) {
	nodes, err := ParseFragment("<html><head><title>t</title></head><body><p>a</p></body></html>")
	require.NoError(t, err)

	var tags []string
	for _, n := range nodes {
		if IsElement(n) {
			tags = append(tags, TagName(n))
		}
	}
	assert.Contains(t, tags, "p")
	assert.NotContains(t, tags, "html")
	assert.NotContains(t, tags, "body")
}

func TestParseFragment_RecoversFromMalformedMarkup(t *testing.T) {
	nodes, err := ParseFragment("<p>unclosed <strong>and nested")
	require.NoError(t, err)
	require.NotEmpty(t, nodes)

	assert.Equal(t, "p", TagName(nodes[0]))
	assert.Contains(t, Text(nodes[0]), "unclosed")
	assert.Contains(t, Text(nodes[0]), "and nested")
}

func TestRender_OuterMarkup(t *testing.T) {
	nodes, err := ParseFragment(`<blockquote><em>quoted</em></blockquote>`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	assert.Equal(t, "<blockquote><em>quoted</em></blockquote>", Render(nodes[0]))
}

func TestRender_TextNodeEscapesEntities(t *testing.T) {
	n := &html.Node{Type: html.TextNode, Data: "a < b & c"}
	assert.Equal(t, "a &lt; b &amp; c", Render(n))
}

func TestText_ConcatenatesDescendants(t *testing.T) {
	nodes, err := ParseFragment("<div><span>Hello</span> <strong>world</strong></div>")
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	assert.Equal(t, "Hello world", Text(nodes[0]))
}

func TestChildren_Order(t *testing.T) {
	nodes, err := ParseFragment("<ul><li>a</li><li>b</li><li>c</li></ul>")
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	kids := Children(nodes[0])
	require.Len(t, kids, 3)
	var texts []string
	for _, k := range kids {
		texts = append(texts, strings.TrimSpace(Text(k)))
	}
	assert.Equal(t, []string{"a", "b", "c"}, texts)
}
