package refinery

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/bububa/chunklet/tokenizer"
	"github.com/bububa/chunklet/types"
)

// OverlapRefinery carries context across chunk boundaries: each chunk gains a
// slice of its neighbor, either appended to the text (merge) or attached as a
// Context annotation. Chunk offsets are never altered, so the sequence still
// tiles the source even when merged text duplicates the neighbor's.
type OverlapRefinery struct {
	Options
	counter tokenizer.Counter
	tok     tokenizer.Tokenizer
}

var _ Refinery = (*OverlapRefinery)(nil)

// NewOverlapRefinery creates an OverlapRefinery. By default it appends the
// head of the next chunk, sized at a quarter of the largest chunk.
func NewOverlapRefinery(opts ...Option) (*OverlapRefinery, error) {
	ret := &OverlapRefinery{Options: defaultOptions()}
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.contextSize < 0 {
		return nil, types.NewConfigError("context_size", "must not be negative, got %d", ret.contextSize)
	}
	if ret.contextSize == 0 && (ret.contextRatio <= 0 || ret.contextRatio >= 1) {
		return nil, types.NewConfigError("context_size", "fraction must be in (0,1), got %v", ret.contextRatio)
	}
	switch ret.mode {
	case ModeToken, ModeRecursive:
	default:
		return nil, types.NewConfigError("mode", "must be %q or %q, got %q", ModeToken, ModeRecursive, ret.mode)
	}
	switch ret.method {
	case MethodPrefix, MethodSuffix:
	default:
		return nil, types.NewConfigError("method", "must be %q or %q, got %q", MethodPrefix, MethodSuffix, ret.method)
	}
	if !ret.rulesSet {
		ret.rules = types.DefaultRules()
	}
	if err := ret.rules.Validate(); err != nil {
		return nil, err
	}
	ret.counter = ret.effectiveCounter()
	ret.tok = ret.effectiveTokenizer()
	return ret, nil
}

// Refine attaches neighbor context to every chunk that has the relevant
// neighbor. The first chunk is untouched in prefix mode, the last in suffix
// mode. With inplace disabled the input slice is left unmodified.
func (r *OverlapRefinery) Refine(chunks []types.Chunk) ([]types.Chunk, error) {
	if len(chunks) < 2 {
		return chunks, nil
	}
	out := chunks
	if !r.inplace {
		out = types.CopyChunks(chunks)
	}
	size := r.resolveSize(out)
	if size <= 0 {
		return out, nil
	}
	switch r.method {
	case MethodSuffix:
		for i := 0; i+1 < len(out); i++ {
			c := r.headContext(&out[i+1], size)
			out[i].Context = &c
			if r.merge {
				out[i].Text += c.Text
				out[i].TokenCount = r.counter.Count(out[i].Text)
			}
		}
	case MethodPrefix:
		// carve every context before any merge so a prepended prefix never
		// leaks into the next chunk's context
		ctxs := make([]types.Context, len(out))
		for i := 1; i < len(out); i++ {
			ctxs[i] = r.tailContext(&out[i-1], size)
		}
		for i := 1; i < len(out); i++ {
			c := ctxs[i]
			out[i].Context = &c
			if r.merge {
				out[i].Text = c.Text + out[i].Text
				out[i].TokenCount = r.counter.Count(out[i].Text)
			}
		}
	}
	return out, nil
}

// resolveSize turns the configured context size into a token count, using the
// largest chunk as the reference for fractional sizes.
func (r *OverlapRefinery) resolveSize(chunks []types.Chunk) int {
	if r.contextSize > 0 {
		return r.contextSize
	}
	maxTokens := 0
	for _, c := range chunks {
		if c.TokenCount > maxTokens {
			maxTokens = c.TokenCount
		}
	}
	return int(math.Round(r.contextRatio * float64(maxTokens)))
}

// headContext carves the leading context out of the next chunk.
func (r *OverlapRefinery) headContext(next *types.Chunk, size int) types.Context {
	text := next.Text
	if r.mode == ModeRecursive {
		if b := r.headBoundary(text, size); b > 0 {
			ctx := text[:b]
			return types.Context{
				Text:       ctx,
				TokenCount: r.counter.Count(ctx),
				StartIndex: next.StartIndex,
				EndIndex:   next.StartIndex + b,
			}
		}
	}
	ids := r.tok.Encode(text)
	ctx := text
	if len(ids) > size {
		ctx = r.tok.Decode(ids[:size])
	}
	return types.Context{
		Text:       ctx,
		TokenCount: r.counter.Count(ctx),
		StartIndex: next.StartIndex,
		EndIndex:   next.StartIndex + len(ctx),
	}
}

// tailContext carves the trailing context out of the previous chunk.
func (r *OverlapRefinery) tailContext(prev *types.Chunk, size int) types.Context {
	text := prev.Text
	if r.mode == ModeRecursive {
		if b := r.tailBoundary(text, size); b > 0 {
			ctx := text[b:]
			return types.Context{
				Text:       ctx,
				TokenCount: r.counter.Count(ctx),
				StartIndex: prev.StartIndex + b,
				EndIndex:   prev.EndIndex,
			}
		}
	}
	ids := r.tok.Encode(text)
	ctx := text
	if len(ids) > size {
		ctx = r.tok.Decode(ids[len(ids)-size:])
	}
	return types.Context{
		Text:       ctx,
		TokenCount: r.counter.Count(ctx),
		StartIndex: prev.EndIndex - len(ctx),
		EndIndex:   prev.EndIndex,
	}
}

// searchRadius bounds how far into the neighbor the boundary search looks.
func searchRadius(size int) int {
	return size * 8
}

// tailBoundary finds a delimiter-aligned suffix start whose tail fits the
// token budget, trying each rule level in order. Returns -1 when no boundary
// in the search window fits.
func (r *OverlapRefinery) tailBoundary(text string, size int) int {
	from := len(text) - min(len(text), searchRadius(size))
	for l := 0; l < r.rules.Len(); l++ {
		lv := r.rules.Level(l)
		if lv.Terminal() {
			break
		}
		for _, b := range levelBoundaries(text, lv, from) {
			if b >= len(text) {
				continue
			}
			if r.counter.Count(text[b:]) <= size {
				return b
			}
		}
	}
	return -1
}

// headBoundary finds a delimiter-aligned prefix end whose head fits the token
// budget, preferring the longest prefix within budget.
func (r *OverlapRefinery) headBoundary(text string, size int) int {
	radius := min(len(text), searchRadius(size))
	best := -1
	for l := 0; l < r.rules.Len(); l++ {
		lv := r.rules.Level(l)
		if lv.Terminal() {
			break
		}
		for _, b := range levelBoundaries(text[:radius], lv, 0) {
			if b >= len(text) {
				continue
			}
			if r.counter.Count(text[:b]) <= size {
				if b > best {
					best = b
				}
			} else {
				break
			}
		}
		if best > 0 {
			return best
		}
	}
	return best
}

// levelBoundaries lists the split positions one rule level produces in text,
// ascending, starting the scan at from.
func levelBoundaries(text string, lv types.RecursiveLevel, from int) []int {
	var bs []int
	if lv.Whitespace {
		inSpace := false
		for i, c := range text {
			if i < from {
				continue
			}
			if unicode.IsSpace(c) {
				inSpace = true
			} else if inSpace {
				bs = append(bs, i)
				inSpace = false
			}
		}
		return bs
	}
	for _, d := range lv.Delimiters {
		for i := from; i < len(text); {
			j := strings.Index(text[i:], d)
			if j < 0 {
				break
			}
			bs = append(bs, i+j+len(d))
			i += j + len(d)
		}
	}
	sort.Ints(bs)
	return bs
}
