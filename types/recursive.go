package types

import (
	"github.com/go-playground/validator/v10"
)

// DelimInclude controls how a matched delimiter attaches to its neighboring
// fragments when a recursive level splits text.
type DelimInclude string

const (
	// DelimNone drops the delimiter entirely
	DelimNone DelimInclude = ""
	// DelimPrev appends the delimiter to the fragment before the split point
	DelimPrev DelimInclude = "prev"
	// DelimNext prepends the delimiter to the fragment after the split point
	DelimNext DelimInclude = "next"
)

var validate = validator.New()

// RecursiveLevel declares how one level of the recursive splitter divides a
// fragment. Delimiters and Whitespace are mutually exclusive; a level with
// neither is terminal and fragments reaching it are emitted as they are.
type RecursiveLevel struct {
	// Delimiters are literal substrings marking candidate split boundaries,
	// tried in declared order
	Delimiters []string `json:"delimiters,omitempty" yaml:"delimiters,omitempty" validate:"excluded_with=Whitespace"`
	// Whitespace splits on maximal whitespace runs instead of explicit delimiters
	Whitespace bool `json:"whitespace,omitempty" yaml:"whitespace,omitempty"`
	// IncludeDelim controls delimiter attachment, one of "", "prev", "next"
	IncludeDelim DelimInclude `json:"include_delim,omitempty" yaml:"include_delim,omitempty"`
}

// Validate checks the level's internal consistency.
func (l RecursiveLevel) Validate() error {
	if len(l.Delimiters) > 0 && l.Whitespace {
		return NewConfigError("rules", "delimiters and whitespace splitting are mutually exclusive")
	}
	for _, d := range l.Delimiters {
		if d == "" {
			return NewConfigError("rules", "empty string is not a valid delimiter")
		}
	}
	switch l.IncludeDelim {
	case DelimNone, DelimPrev, DelimNext:
	default:
		return NewConfigError("include_delim", "must be one of %q, %q, %q", DelimNone, DelimPrev, DelimNext)
	}
	if err := validate.Struct(l); err != nil {
		return NewConfigError("rules", "%v", err)
	}
	return nil
}

// Terminal reports whether this level has nothing left to split on.
func (l RecursiveLevel) Terminal() bool {
	return len(l.Delimiters) == 0 && !l.Whitespace
}

// RecursiveRules is an ordered sequence of levels applied top-down: level i is
// only applied to fragments produced by level i-1 that still exceed the token
// budget.
type RecursiveRules struct {
	Levels []RecursiveLevel `json:"levels" yaml:"levels"`
}

// Validate checks every level of the rule set.
func (r RecursiveRules) Validate() error {
	if len(r.Levels) == 0 {
		return NewConfigError("rules", "at least one level is required")
	}
	for _, l := range r.Levels {
		if err := l.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Level returns the level at depth i, or a terminal level when the depth
// exceeds the declared levels.
func (r RecursiveRules) Level(i int) RecursiveLevel {
	if i < 0 || i >= len(r.Levels) {
		return RecursiveLevel{}
	}
	return r.Levels[i]
}

// Len returns the number of declared levels.
func (r RecursiveRules) Len() int {
	return len(r.Levels)
}

// DefaultRules returns the standard level hierarchy: paragraphs, sentences,
// sub-sentence pauses, whitespace, then a terminal level.
func DefaultRules() RecursiveRules {
	return RecursiveRules{
		Levels: []RecursiveLevel{
			{Delimiters: []string{"\n\n", "\r\n", "\n", "\r"}, IncludeDelim: DelimPrev},
			{Delimiters: []string{". ", "! ", "? "}, IncludeDelim: DelimPrev},
			{
				Delimiters: []string{
					"{", "}", "\"", "[", "]", "<", ">", "(", ")", ":", ";", ",",
					"—", "|", "~", "-", "...", "`", "'",
				},
				IncludeDelim: DelimPrev,
			},
			{Whitespace: true},
			{},
		},
	}
}
