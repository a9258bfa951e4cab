// Package refinery post-processes chunk sequences. Refineries never change
// the source coverage recorded in chunk offsets; they only decorate or merge
// neighboring context.
package refinery

import (
	"github.com/bububa/chunklet/types"
)

// Refinery transforms a chunk sequence after chunking.
type Refinery interface {
	// Refine returns the processed sequence. Implementations document whether
	// the input slice is modified in place.
	Refine(chunks []types.Chunk) ([]types.Chunk, error)
}
