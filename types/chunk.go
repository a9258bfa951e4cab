package types

import (
	"fmt"

	"github.com/google/uuid"
)

// Context is supplementary text injected from a neighboring chunk to preserve
// continuity across chunk boundaries. StartIndex/EndIndex refer to the original
// source text and are -1 when the position is unknown.
type Context struct {
	// Text contains the injected context content
	Text string `json:"text"`
	// TokenCount represents the number of tokens in the context
	TokenCount int `json:"token_count"`
	// StartIndex is the starting offset of the context in the source text, or -1
	StartIndex int `json:"start_index"`
	// EndIndex is the ending offset of the context in the source text, or -1
	EndIndex int `json:"end_index"`
}

// Chunk represents a contiguous (or overlap-extended) span of source text with
// associated metadata for tracking its position and size within the original
// document.
type Chunk struct {
	// Text contains the actual content of the chunk
	Text string `json:"text"`
	// StartIndex is the byte offset of the first character in the source text
	StartIndex int `json:"start_index"`
	// EndIndex is the byte offset one past the last character (half-open)
	EndIndex int `json:"end_index"`
	// TokenCount represents the number of tokens in this chunk
	TokenCount int `json:"token_count"`
	// Context holds injected overlap context when a refinery ran in non-merge mode
	Context *Context `json:"context,omitempty"`
	// Level is the recursion depth that produced this chunk, for recursive-derived chunks
	Level int `json:"level,omitempty"`
}

// ID returns a deterministic UUID derived from the chunk content and offsets.
func (c Chunk) ID() string {
	name := fmt.Sprintf("%d:%d:%s", c.StartIndex, c.EndIndex, c.Text)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// Copy returns a deep copy of the chunk, detached from any shared Context.
func (c Chunk) Copy() Chunk {
	ret := c
	if c.Context != nil {
		ctx := *c.Context
		ret.Context = &ctx
	}
	return ret
}

// CopyChunks deep-copies a chunk sequence. Refineries use it for
// copy-on-write semantics when inplace is disabled.
func CopyChunks(chunks []Chunk) []Chunk {
	if chunks == nil {
		return nil
	}
	ret := make([]Chunk, len(chunks))
	for i, c := range chunks {
		ret[i] = c.Copy()
	}
	return ret
}

// Sentence is the intermediate unit of the sentence chunker: a delimiter-bounded
// span of the source text with a token count.
type Sentence struct {
	// Text contains the sentence content including any attached delimiter
	Text string `json:"text"`
	// StartIndex is the byte offset of the sentence in the source text
	StartIndex int `json:"start_index"`
	// EndIndex is the byte offset one past the sentence end
	EndIndex int `json:"end_index"`
	// TokenCount represents the number of tokens in this sentence
	TokenCount int `json:"token_count"`
}
