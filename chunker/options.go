package chunker

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/bububa/chunklet/genie"
	"github.com/bububa/chunklet/tokenizer"
	"github.com/bububa/chunklet/types"
)

// Options holds the shared configuration for chunker construction. Each
// chunker validates the subset it cares about.
type Options struct {
	chunkSize                int
	overlap                  int
	overlapRatio             float64
	counter                  tokenizer.Counter
	tok                      tokenizer.Tokenizer
	rules                    types.RecursiveRules
	rulesSet                 bool
	delimiters               []string
	includeDelim             types.DelimInclude
	minCharactersPerChunk    int
	minCharactersPerSentence int
	minSentencesPerChunk     int
	candidateSize            int
	language                 *sitter.Language
	oracle                   genie.Genie
	verbose                  bool
	concurrency              int
	progress                 func(done, total int)
}

// Option is a function type for configuring chunker Options.
// This follows the functional options pattern for clean and flexible configuration.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		chunkSize:                512,
		includeDelim:             types.DelimPrev,
		minCharactersPerChunk:    1,
		minCharactersPerSentence: 12,
		minSentencesPerChunk:     1,
		candidateSize:            128,
	}
}

// WithChunkSize sets the token budget per chunk.
func WithChunkSize(size int) Option {
	return func(o *Options) {
		o.chunkSize = size
	}
}

// WithOverlap sets the overlap between adjacent chunks as an absolute token count.
func WithOverlap(overlap int) Option {
	return func(o *Options) {
		o.overlap = overlap
	}
}

// WithOverlapRatio sets the overlap as a fraction of the chunk size, in (0,1).
func WithOverlapRatio(ratio float64) Option {
	return func(o *Options) {
		o.overlapRatio = ratio
	}
}

// WithCounter sets the token counter used for budget arithmetic.
func WithCounter(counter tokenizer.Counter) Option {
	return func(o *Options) {
		o.counter = counter
	}
}

// WithTokenizer sets a full tokenizer backend. It also serves as the counter
// unless one is set explicitly.
func WithTokenizer(tok tokenizer.Tokenizer) Option {
	return func(o *Options) {
		o.tok = tok
	}
}

// WithRules sets the recursive splitting rules.
func WithRules(rules types.RecursiveRules) Option {
	return func(o *Options) {
		o.rules = rules
		o.rulesSet = true
	}
}

// WithDelimiters sets the sentence delimiters and their attachment mode.
func WithDelimiters(delims []string, include types.DelimInclude) Option {
	return func(o *Options) {
		o.delimiters = delims
		o.includeDelim = include
	}
}

// WithMinCharactersPerChunk sets the minimum fragment length; shorter
// fragments fold into their neighbor instead of standing alone.
func WithMinCharactersPerChunk(n int) Option {
	return func(o *Options) {
		o.minCharactersPerChunk = n
	}
}

// WithMinCharactersPerSentence sets the minimum sentence length for the
// sentence chunker; shorter splits fold into the previous sentence.
func WithMinCharactersPerSentence(n int) Option {
	return func(o *Options) {
		o.minCharactersPerSentence = n
	}
}

// WithMinSentencesPerChunk sets the minimum number of sentences per chunk for
// the sentence chunker.
func WithMinSentencesPerChunk(n int) Option {
	return func(o *Options) {
		o.minSentencesPerChunk = n
	}
}

// WithCandidateSize sets the token size of the candidate window presented to
// the oracle per decision.
func WithCandidateSize(n int) Option {
	return func(o *Options) {
		o.candidateSize = n
	}
}

// WithLanguage sets the tree-sitter grammar used by the code chunker.
func WithLanguage(lang *sitter.Language) Option {
	return func(o *Options) {
		o.language = lang
	}
}

// WithGenie sets the boundary oracle consulted by the slumber chunker.
func WithGenie(g genie.Genie) Option {
	return func(o *Options) {
		o.oracle = g
	}
}

// WithVerbose enables progress reporting. It has no behavioral effect on the
// produced chunks.
func WithVerbose(verbose bool) Option {
	return func(o *Options) {
		o.verbose = verbose
	}
}

// WithConcurrency sets the number of parallel workers used by ChunkBatch.
// Values below 2 keep batch chunking sequential.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.concurrency = n
	}
}

// WithProgress sets a callback invoked as batch items complete.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) {
		o.progress = fn
	}
}

// effectiveCounter prefers an explicit counter, then the tokenizer, then the
// character backend.
func (o *Options) effectiveCounter() tokenizer.Counter {
	if o.counter != nil {
		return o.counter
	}
	if o.tok != nil {
		return o.tok
	}
	return new(tokenizer.Character)
}
