package chunker

import (
	"context"
	"fmt"
	"strings"

	"github.com/bububa/chunklet/genie"
	"github.com/bububa/chunklet/tokenizer"
	"github.com/bububa/chunklet/types"
)

// SlumberChunker combines recursive splitting with a generative boundary
// oracle. The text is first divided into small candidate passages, then a
// window of passages is presented to the oracle, which picks the last passage
// that belongs in the current chunk. Every window consumes at least one
// passage, so the walk always terminates.
type SlumberChunker struct {
	Options
	counter   tokenizer.Counter
	oracle    genie.Genie
	candidate *RecursiveChunker
}

var _ Chunker = (*SlumberChunker)(nil)

// NewSlumberChunker creates a SlumberChunker. A genie is required.
func NewSlumberChunker(opts ...Option) (*SlumberChunker, error) {
	ret := &SlumberChunker{Options: defaultOptions()}
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.Options.oracle == nil {
		return nil, types.NewConfigError("genie", "a boundary oracle is required")
	}
	if ret.chunkSize <= 0 {
		return nil, types.NewConfigError("chunk_size", "must be positive, got %d", ret.chunkSize)
	}
	if ret.candidateSize <= 0 {
		return nil, types.NewConfigError("candidate_size", "must be positive, got %d", ret.candidateSize)
	}
	if ret.candidateSize > ret.chunkSize {
		return nil, types.NewConfigError("candidate_size", "must not exceed chunk_size (%d > %d)", ret.candidateSize, ret.chunkSize)
	}
	candidateOpts := []Option{
		WithChunkSize(ret.candidateSize),
		WithMinCharactersPerChunk(ret.minCharactersPerChunk),
	}
	if ret.rulesSet {
		candidateOpts = append(candidateOpts, WithRules(ret.rules))
	}
	if ret.Options.counter != nil {
		candidateOpts = append(candidateOpts, WithCounter(ret.Options.counter))
	}
	if ret.Options.tok != nil {
		candidateOpts = append(candidateOpts, WithTokenizer(ret.Options.tok))
	}
	candidate, err := NewRecursiveChunker(candidateOpts...)
	if err != nil {
		return nil, err
	}
	ret.counter = ret.effectiveCounter()
	ret.oracle = ret.Options.oracle
	ret.candidate = candidate
	return ret, nil
}

// Chunk splits the input text at oracle-chosen boundaries.
func (c *SlumberChunker) Chunk(ctx context.Context, text string) ([]types.Chunk, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	passages, err := c.candidate.Chunk(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(passages) == 0 {
		return nil, nil
	}
	var chunks []types.Chunk
	pos := 0
	for pos < len(passages) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := pos
		count := 0
		for end < len(passages) && (end == pos || count+passages[end].TokenCount <= c.chunkSize) {
			count += passages[end].TokenCount
			end++
		}
		consumed := end - pos
		if consumed > 1 {
			texts := make([]string, consumed)
			for i, p := range passages[pos:end] {
				texts[i] = p.Text
			}
			req := genie.NewSplitRequest(texts, c.chunkSize)
			decision, err := c.oracle.Split(ctx, req)
			if err != nil {
				return nil, types.NewOracleError(passages[pos].StartIndex, err)
			}
			if decision == nil || !decision.Valid(consumed) {
				return nil, types.NewOracleError(passages[pos].StartIndex,
					fmt.Errorf("split index out of range for %d passages", consumed))
			}
			if decision.SplitIndex > 0 {
				consumed = decision.SplitIndex
			}
		}
		last := passages[pos+consumed-1]
		chunkText := text[passages[pos].StartIndex:last.EndIndex]
		chunks = append(chunks, types.Chunk{
			Text:       chunkText,
			StartIndex: passages[pos].StartIndex,
			EndIndex:   last.EndIndex,
			TokenCount: c.counter.Count(chunkText),
		})
		pos += consumed
		if c.verbose && c.progress != nil {
			c.progress(pos, len(passages))
		}
	}
	return chunks, nil
}

// ChunkBatch chunks each text independently, preserving input order.
func (c *SlumberChunker) ChunkBatch(ctx context.Context, texts []string) ([][]types.Chunk, error) {
	return chunkBatch(ctx, texts, c.concurrency, c.progress, c.Chunk)
}
