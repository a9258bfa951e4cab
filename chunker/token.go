package chunker

import (
	"context"

	"github.com/bububa/chunklet/tokenizer"
	"github.com/bububa/chunklet/types"
)

// TokenChunker slides a fixed-size token window across the text, advancing by
// chunkSize-overlap tokens each step. The last window may be shorter. Offsets
// are derived from the cumulative decoded length of the consumed tokens, so
// with overlap 0 the chunk texts concatenate back to the decoded source.
type TokenChunker struct {
	Options
	tok    tokenizer.Tokenizer
	stride int
}

var _ Chunker = (*TokenChunker)(nil)

// NewTokenChunker creates a TokenChunker. Overlap greater than or equal to the
// chunk size is a configuration error.
func NewTokenChunker(opts ...Option) (*TokenChunker, error) {
	ret := &TokenChunker{Options: defaultOptions()}
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.chunkSize <= 0 {
		return nil, types.NewConfigError("chunk_size", "must be positive, got %d", ret.chunkSize)
	}
	overlap, err := resolveOverlap(ret.overlap, ret.overlapRatio, ret.chunkSize)
	if err != nil {
		return nil, err
	}
	if overlap >= ret.chunkSize {
		return nil, types.NewConfigError("chunk_overlap", "must be less than chunk_size (%d >= %d)", overlap, ret.chunkSize)
	}
	ret.tok = ret.Options.tok
	if ret.tok == nil {
		ret.tok = new(tokenizer.Character)
	}
	ret.stride = ret.chunkSize - overlap
	return ret, nil
}

// Chunk splits the input text into overlapping token windows.
func (c *TokenChunker) Chunk(ctx context.Context, text string) ([]types.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	ids := c.tok.Encode(text)
	if len(ids) == 0 {
		return nil, nil
	}
	// Cumulative decoded lengths give each window's character offsets.
	cums := make([]int, len(ids)+1)
	for i := range ids {
		cums[i+1] = cums[i] + len(c.tok.Decode(ids[i:i+1]))
	}
	var chunks []types.Chunk
	for start := 0; start < len(ids); start += c.stride {
		end := min(start+c.chunkSize, len(ids))
		chunks = append(chunks, types.Chunk{
			Text:       c.tok.Decode(ids[start:end]),
			StartIndex: cums[start],
			EndIndex:   cums[end],
			TokenCount: end - start,
		})
		if end == len(ids) {
			break
		}
	}
	return chunks, nil
}

// ChunkBatch chunks each text independently, preserving input order.
func (c *TokenChunker) ChunkBatch(ctx context.Context, texts []string) ([][]types.Chunk, error) {
	return chunkBatch(ctx, texts, c.concurrency, c.progress, c.Chunk)
}
