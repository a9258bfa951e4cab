// Package handshake ships embedded chunks into vector stores.
package handshake

import (
	"context"
	"strconv"

	"github.com/bububa/chunklet/types"
)

// Embedder produces vector representations of chunk text.
type Embedder interface {
	// Model names the embedding model in use
	Model() string
	// Embed embeds a single text
	Embed(ctx context.Context, text string) ([]float32, error)
	// BatchEmbed embeds texts in one round trip, preserving order
	BatchEmbed(ctx context.Context, texts []string) ([][]float32, error)
}

// Handshake writes chunks and their embeddings into one storage backend.
type Handshake interface {
	Write(ctx context.Context, chunks []types.Chunk) error
}

// ChunkMeta is the metadata every backend records alongside a chunk.
func ChunkMeta(c *types.Chunk) map[string]string {
	return map[string]string{
		"start_index": strconv.Itoa(c.StartIndex),
		"end_index":   strconv.Itoa(c.EndIndex),
		"token_count": strconv.Itoa(c.TokenCount),
	}
}
