package types

// ChunkType represents the semantic type of a content chunk
type ChunkType string

const (
	ChunkText    ChunkType = "text"
	ChunkHeading ChunkType = "heading"
	ChunkImage   ChunkType = "image"
	ChunkVideo   ChunkType = "video"
	ChunkList    ChunkType = "list"
	ChunkQuote   ChunkType = "quote"
	ChunkCallout ChunkType = "callout"
	ChunkTable   ChunkType = "table"
)

// Chunk represents one independently editable block of lesson content.
//
// ID is process-local: it is regenerated on every decomposition and must not
// be persisted across re-parses. Content is a self-contained HTML fragment;
// concatenating the Content of an ordered chunk sequence reconstructs a
// document semantically equivalent to the one it was decomposed from.
type Chunk struct {
	ID      string    `json:"id"`
	Type    ChunkType `json:"type"`
	Content string    `json:"content"`
}

// ValidateContent checks if the chunk content is valid
func (c *Chunk) ValidateContent() error {
	if c.Content == "" {
		return ErrEmptyContent
	}
	return nil
}

// ValidateChunkType checks if the chunk type is one of the closed set
func (c *Chunk) ValidateChunkType() error {
	switch c.Type {
	case ChunkText, ChunkHeading, ChunkImage, ChunkVideo, ChunkList, ChunkQuote, ChunkCallout, ChunkTable:
		return nil
	default:
		return ErrInvalidChunkType
	}
}

// Validate performs comprehensive validation of the chunk
func (c *Chunk) Validate() error {
	if c.ID == "" {
		return ErrMissingChunkID
	}

	if err := c.ValidateChunkType(); err != nil {
		return err
	}

	return c.ValidateContent()
}
