// Package parser wraps golang.org/x/net/html with the small tree surface the
// chunker needs: fragment parsing, node serialization, and node predicates.
//
// The parser is tolerant by construction. Fragment parsing runs in a <body>
// insertion context, so lesson HTML retrieved from storage needs no document
// wrapper, and the html5 recovery rules absorb unclosed or misnested tags
// instead of returning errors.
//
// # Basic Usage
//
//	nodes, err := parser.ParseFragment("<h2>Cells</h2><p>Intro</p>")
//	if err != nil {
//	    // only reader failures; malformed markup does not error
//	}
//
//	for _, n := range nodes {
//	    fmt.Println(parser.TagName(n), parser.Render(n))
//	}
//
// # Serialization
//
// Render produces the node's full outer markup. It is not byte-preserving
// with respect to the original input: attribute order, quoting, and void-tag
// syntax follow the serializer, which is why the chunker's round-trip
// guarantee is semantic rather than textual.
package parser
