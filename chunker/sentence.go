package chunker

import (
	"context"
	"strings"

	"github.com/bububa/chunklet/tokenizer"
	"github.com/bububa/chunklet/types"
)

// SentenceChunker splits text on sentence delimiters and packs whole sentences
// into chunks while respecting the token budget. Splits shorter than the
// minimum sentence length fold into the previous sentence.
type SentenceChunker struct {
	Options
	counter tokenizer.Counter
	overlap int
}

var _ Chunker = (*SentenceChunker)(nil)

// NewSentenceChunker creates a SentenceChunker. Default delimiters are
// ". ", "! ", "? " and newline, attached to the preceding sentence.
func NewSentenceChunker(opts ...Option) (*SentenceChunker, error) {
	ret := &SentenceChunker{Options: defaultOptions()}
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.chunkSize <= 0 {
		return nil, types.NewConfigError("chunk_size", "must be positive, got %d", ret.chunkSize)
	}
	overlap, err := resolveOverlap(ret.Options.overlap, ret.overlapRatio, ret.chunkSize)
	if err != nil {
		return nil, err
	}
	if overlap >= ret.chunkSize {
		return nil, types.NewConfigError("chunk_overlap", "must be less than chunk_size (%d >= %d)", overlap, ret.chunkSize)
	}
	if ret.minSentencesPerChunk < 1 {
		return nil, types.NewConfigError("min_sentences_per_chunk", "must be at least 1, got %d", ret.minSentencesPerChunk)
	}
	if ret.minCharactersPerSentence < 1 {
		return nil, types.NewConfigError("min_characters_per_sentence", "must be at least 1, got %d", ret.minCharactersPerSentence)
	}
	if ret.delimiters == nil {
		ret.delimiters = []string{". ", "! ", "? ", "\n"}
	}
	lv := types.RecursiveLevel{Delimiters: ret.delimiters, IncludeDelim: ret.includeDelim}
	if err := lv.Validate(); err != nil {
		return nil, err
	}
	ret.counter = ret.effectiveCounter()
	ret.overlap = overlap
	return ret, nil
}

// Sentences splits the text into its delimiter-bounded sentences with token
// counts, without packing them into chunks.
func (c *SentenceChunker) Sentences(text string) []types.Sentence {
	lv := types.RecursiveLevel{Delimiters: c.delimiters, IncludeDelim: c.includeDelim}
	spans := foldShort(splitLevel(text, lv), c.minCharactersPerSentence)
	sentences := make([]types.Sentence, len(spans))
	for i, s := range spans {
		sent := text[s.start:s.end]
		sentences[i] = types.Sentence{
			Text:       sent,
			StartIndex: s.start,
			EndIndex:   s.end,
			TokenCount: c.counter.Count(sent),
		}
	}
	return sentences
}

// Chunk splits text into chunks of whole sentences.
func (c *SentenceChunker) Chunk(ctx context.Context, text string) ([]types.Chunk, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	sentences := c.Sentences(text)
	if len(sentences) == 0 {
		return nil, nil
	}
	type group struct {
		first, last int
	}
	var groups []group
	pos := 0
	for pos < len(sentences) {
		idx := pos
		count := 0
		for idx < len(sentences) && (idx-pos < c.minSentencesPerChunk || count+sentences[idx].TokenCount <= c.chunkSize) {
			count += sentences[idx].TokenCount
			idx++
		}
		groups = append(groups, group{first: pos, last: idx - 1})
		if idx >= len(sentences) {
			break
		}
		next := idx
		if c.overlap > 0 {
			next = max(pos+1, idx-c.estimateOverlapSentences(sentences, idx))
		}
		pos = next
	}
	chunks := make([]types.Chunk, len(groups))
	for i, g := range groups {
		start := sentences[g.first].StartIndex
		end := sentences[g.last].EndIndex
		if c.overlap == 0 {
			// stretch over dropped delimiters so the chunks tile the source
			if i == 0 {
				start = 0
			}
			if i+1 < len(groups) {
				end = sentences[groups[i+1].first].StartIndex
			} else {
				end = len(text)
			}
		}
		chunkText := text[start:end]
		chunks[i] = types.Chunk{
			Text:       chunkText,
			StartIndex: start,
			EndIndex:   end,
			TokenCount: c.counter.Count(chunkText),
		}
	}
	return chunks, nil
}

// ChunkBatch chunks each text independently, preserving input order.
func (c *SentenceChunker) ChunkBatch(ctx context.Context, texts []string) ([][]types.Chunk, error) {
	return chunkBatch(ctx, texts, c.concurrency, c.progress, c.Chunk)
}

// estimateOverlapSentences calculates how many sentences from the end of the
// previous chunk should start the next chunk to achieve the desired token
// overlap.
func (c *SentenceChunker) estimateOverlapSentences(sentences []types.Sentence, end int) int {
	overlapTokens := 0
	overlapSentences := 0
	for i := end - 1; i >= 0 && overlapTokens < c.overlap; i-- {
		if overlapTokens+sentences[i].TokenCount > c.overlap {
			break
		}
		overlapTokens += sentences[i].TokenCount
		overlapSentences++
	}
	return overlapSentences
}
