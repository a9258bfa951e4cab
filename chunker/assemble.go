package chunker

import (
	"github.com/bububa/chunklet/tokenizer"
	"github.com/bububa/chunklet/types"
)

// assembleFragments greedily packs adjacent fragments up to the token budget.
// Chunk boundaries are then stretched over any dropped delimiters, whitespace
// or unsplit bytes so the sequence tiles the source text with no gaps and no
// overlaps.
func assembleFragments(text string, frags []fragment, counter tokenizer.Counter, chunkSize int) []types.Chunk {
	if len(frags) == 0 {
		return nil
	}
	type group struct {
		start int
		level int
	}
	var groups []group
	var (
		count   int
		started bool
		cur     group
	)
	flush := func() {
		if started {
			groups = append(groups, cur)
			started = false
			count = 0
		}
	}
	for _, f := range frags {
		n := counter.Count(text[f.start:f.end])
		if started && count+n > chunkSize {
			flush()
		}
		if !started {
			cur = group{start: f.start, level: f.level}
			started = true
		}
		if f.level > cur.level {
			cur.level = f.level
		}
		count += n
	}
	flush()

	chunks := make([]types.Chunk, len(groups))
	for i, g := range groups {
		start := g.start
		if i == 0 {
			start = 0
		}
		end := len(text)
		if i+1 < len(groups) {
			end = groups[i+1].start
		}
		chunkText := text[start:end]
		chunks[i] = types.Chunk{
			Text:       chunkText,
			StartIndex: start,
			EndIndex:   end,
			TokenCount: counter.Count(chunkText),
			Level:      g.level,
		}
	}
	return chunks
}
