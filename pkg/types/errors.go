package types

import "errors"

// Domain errors for type validation
var (
	ErrEmptyContent     = errors.New("chunk content cannot be empty")
	ErrInvalidChunkType = errors.New("invalid chunk type")
	ErrMissingChunkID   = errors.New("chunk ID is required")
)
