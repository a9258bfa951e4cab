package refinery

import (
	"github.com/bububa/chunklet/tokenizer"
	"github.com/bububa/chunklet/types"
)

// Mode selects how overlap context is carved out of a neighboring chunk.
type Mode string

const (
	// ModeToken slices the neighbor at an exact token offset.
	ModeToken Mode = "token"
	// ModeRecursive aligns the slice to the nearest delimiter boundary within
	// the token budget, falling back to a raw token slice when no boundary fits.
	ModeRecursive Mode = "recursive"
)

// Method selects which neighbor contributes the context.
type Method string

const (
	// MethodSuffix appends the head of the next chunk.
	MethodSuffix Method = "suffix"
	// MethodPrefix prepends the tail of the previous chunk.
	MethodPrefix Method = "prefix"
)

// Options holds the configuration for refinery construction.
type Options struct {
	contextSize  int
	contextRatio float64
	counter      tokenizer.Counter
	tok          tokenizer.Tokenizer
	mode         Mode
	method       Method
	merge        bool
	inplace      bool
	rules        types.RecursiveRules
	rulesSet     bool
}

// Option is a function type for configuring refinery Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		contextRatio: 0.25,
		mode:         ModeToken,
		method:       MethodSuffix,
		merge:        true,
		inplace:      true,
	}
}

// WithContextSize sets the overlap context as an absolute token count. It
// takes precedence over the ratio.
func WithContextSize(n int) Option {
	return func(o *Options) {
		o.contextSize = n
	}
}

// WithContextRatio sets the overlap context as a fraction of the largest
// chunk's token count, in (0,1).
func WithContextRatio(ratio float64) Option {
	return func(o *Options) {
		o.contextRatio = ratio
	}
}

// WithCounter sets the token counter used for budget arithmetic.
func WithCounter(counter tokenizer.Counter) Option {
	return func(o *Options) {
		o.counter = counter
	}
}

// WithTokenizer sets the tokenizer used to slice neighbor text. It also
// serves as the counter unless one is set explicitly.
func WithTokenizer(tok tokenizer.Tokenizer) Option {
	return func(o *Options) {
		o.tok = tok
	}
}

// WithMode sets the context extraction mode.
func WithMode(mode Mode) Option {
	return func(o *Options) {
		o.mode = mode
	}
}

// WithMethod sets which neighbor contributes the context.
func WithMethod(method Method) Option {
	return func(o *Options) {
		o.method = method
	}
}

// WithMerge controls whether the context text is merged into the chunk text.
// When false only the Context field is populated.
func WithMerge(merge bool) Option {
	return func(o *Options) {
		o.merge = merge
	}
}

// WithInplace controls whether the input slice is modified directly. When
// false Refine works on a copy and leaves the input untouched.
func WithInplace(inplace bool) Option {
	return func(o *Options) {
		o.inplace = inplace
	}
}

// WithRules sets the delimiter hierarchy used by the recursive mode.
func WithRules(rules types.RecursiveRules) Option {
	return func(o *Options) {
		o.rules = rules
		o.rulesSet = true
	}
}

func (o *Options) effectiveCounter() tokenizer.Counter {
	if o.counter != nil {
		return o.counter
	}
	if o.tok != nil {
		return o.tok
	}
	return new(tokenizer.Character)
}

func (o *Options) effectiveTokenizer() tokenizer.Tokenizer {
	if o.tok != nil {
		return o.tok
	}
	return new(tokenizer.Character)
}
