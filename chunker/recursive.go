package chunker

import (
	"context"
	"strings"

	"github.com/bububa/chunklet/tokenizer"
	"github.com/bububa/chunklet/types"
)

// RecursiveChunker applies an ordered hierarchy of splitting levels: each
// level only descends into fragments that still exceed the token budget, so
// semantically large units (paragraphs, sentences) survive whenever they fit.
// Fragments that exhaust every level are emitted oversized, best effort.
type RecursiveChunker struct {
	Options
	counter tokenizer.Counter
}

var _ Chunker = (*RecursiveChunker)(nil)

// fragment is an accepted leaf of the recursive descent: a source span plus
// the recursion depth that produced it.
type fragment struct {
	span
	level int
}

// NewRecursiveChunker creates a RecursiveChunker. Rules default to
// types.DefaultRules when not provided.
func NewRecursiveChunker(opts ...Option) (*RecursiveChunker, error) {
	ret := &RecursiveChunker{Options: defaultOptions()}
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.chunkSize <= 0 {
		return nil, types.NewConfigError("chunk_size", "must be positive, got %d", ret.chunkSize)
	}
	if ret.minCharactersPerChunk < 0 {
		return nil, types.NewConfigError("min_characters_per_chunk", "must not be negative, got %d", ret.minCharactersPerChunk)
	}
	if !ret.rulesSet {
		ret.rules = types.DefaultRules()
	}
	if err := ret.rules.Validate(); err != nil {
		return nil, err
	}
	ret.counter = ret.effectiveCounter()
	return ret, nil
}

// Chunk splits the input text by the configured rules and packs the resulting
// fragments into token-budgeted chunks that tile the source exactly.
func (c *RecursiveChunker) Chunk(ctx context.Context, text string) ([]types.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	frags := c.split(text, span{start: 0, end: len(text)}, 0)
	return c.assemble(text, frags), nil
}

// ChunkBatch chunks each text independently, preserving input order.
func (c *RecursiveChunker) ChunkBatch(ctx context.Context, texts []string) ([][]types.Chunk, error) {
	return chunkBatch(ctx, texts, c.concurrency, c.progress, c.Chunk)
}

// split recursively descends the rule levels until every fragment fits the
// budget or no splittable level remains.
func (c *RecursiveChunker) split(text string, s span, level int) []fragment {
	frag := text[s.start:s.end]
	if c.counter.Count(frag) <= c.chunkSize {
		return []fragment{{span: s, level: level}}
	}
	lv := c.rules.Level(level)
	if level >= c.rules.Len() || lv.Terminal() {
		// oversized leaf, all levels exhausted
		return []fragment{{span: s, level: level}}
	}
	pieces := foldShort(splitLevel(frag, lv), c.minCharactersPerChunk)
	if len(pieces) < 2 {
		return c.split(text, s, level+1)
	}
	var out []fragment
	for _, p := range pieces {
		sub := span{start: s.start + p.start, end: s.start + p.end}
		if c.counter.Count(text[sub.start:sub.end]) <= c.chunkSize {
			out = append(out, fragment{span: sub, level: level})
		} else {
			out = append(out, c.split(text, sub, level+1)...)
		}
	}
	return out
}

func (c *RecursiveChunker) assemble(text string, frags []fragment) []types.Chunk {
	return assembleFragments(text, frags, c.counter, c.chunkSize)
}
