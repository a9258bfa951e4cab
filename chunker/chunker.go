// Package chunker splits raw text into token-budgeted chunks. All chunkers
// validate their configuration at construction time and share the same output
// contract: an ordered sequence of chunks whose offsets tile the source text.
package chunker

import (
	"context"
	"math"

	"github.com/bububa/chunklet/types"
)

// Chunker defines the interface for text chunking implementations. Different
// implementations can provide various strategies for splitting text while
// maintaining context and semantic meaning.
type Chunker interface {
	// Chunk splits the input text into a sequence of chunks according to the
	// implementation's strategy. Empty input yields an empty sequence.
	Chunk(ctx context.Context, text string) ([]types.Chunk, error)
	// ChunkBatch chunks each text independently, preserving input order.
	ChunkBatch(ctx context.Context, texts []string) ([][]types.Chunk, error)
}

// resolveOverlap turns an absolute token count or a fraction in (0,1) into a
// token count relative to chunkSize.
func resolveOverlap(abs int, ratio float64, chunkSize int) (int, error) {
	if ratio != 0 {
		if ratio <= 0 || ratio >= 1 {
			return 0, types.NewConfigError("overlap", "fraction must be in (0,1), got %v", ratio)
		}
		return int(math.Round(ratio * float64(chunkSize))), nil
	}
	if abs < 0 {
		return 0, types.NewConfigError("overlap", "must not be negative, got %d", abs)
	}
	return abs, nil
}
