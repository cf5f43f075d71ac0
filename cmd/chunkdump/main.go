// chunkdump decomposes a lesson HTML file (or stdin) and prints the resulting
// chunk table followed by the recomposed document, for eyeballing round-trip
// behavior during content migrations.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lessonforge/chunkparse-mcp/internal/chunker"
)

func main() {
	log.SetOutput(os.Stderr)

	var content []byte
	var err error
	if len(os.Args) > 1 {
		content, err = os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to read %s: %v", os.Args[1], err)
		}
	} else {
		content, err = io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Failed to read stdin: %v", err)
		}
	}

	c := chunker.New()
	chunks := c.ParseHTMLToChunks(string(content))

	fmt.Printf("Decomposed %d chunk(s):\n\n", len(chunks))
	for i, chunk := range chunks {
		fmt.Printf("[%d] %s (%s)\n", i, chunk.Type, chunk.ID)
		fmt.Printf("    %s\n", chunk.Content)
	}

	fmt.Printf("\nRecomposed HTML:\n%s\n", c.ChunksToHTML(chunks))
}
