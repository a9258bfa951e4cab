// Package genie defines the boundary oracle consulted by the slumber chunker
// for ambiguous split points, with interchangeable generative-model backends.
package genie

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/xid"
)

// SplitRequest is one candidate window presented to the oracle. Passages are
// numbered 1..N in source order; the oracle picks the last passage that should
// stay in the current chunk.
type SplitRequest struct {
	// ID is a unique request identifier for tracing
	ID string `json:"id"`
	// Passages are the candidate fragments, in source order
	Passages []string `json:"passages"`
	// TokenBudget is the chunk size the caller is packing toward
	TokenBudget int `json:"token_budget"`
}

// NewSplitRequest creates a SplitRequest with a generated ID.
func NewSplitRequest(passages []string, budget int) *SplitRequest {
	return &SplitRequest{
		ID:          xid.New().String(),
		Passages:    passages,
		TokenBudget: budget,
	}
}

// Prompt renders the request as a numbered-passage instruction.
func (r *SplitRequest) Prompt() string {
	var sb strings.Builder
	sb.WriteString("You are splitting a document into coherent chunks.\n")
	sb.WriteString("Below are consecutive passages, numbered in order.\n")
	sb.WriteString("Pick the number of the LAST passage that belongs in the current chunk, ")
	sb.WriteString("so the chunk ends at a natural topic boundary.\n")
	sb.WriteString("Answer 0 if no passage boundary is a better split than keeping them all together.\n\n")
	for i, p := range r.Passages {
		fmt.Fprintf(&sb, "<passage id=%d>\n%s\n</passage>\n", i+1, p)
	}
	return sb.String()
}

// SplitDecision is the oracle's verdict on one candidate window. SplitIndex is
// 1-based; 0 means "no split here" and the whole window stays together.
type SplitDecision struct {
	SplitIndex int    `json:"split_index" jsonschema:"title=split_index,description=1-based number of the last passage that belongs in the current chunk; 0 to keep the whole window together."`
	Reasoning  string `json:"reasoning,omitempty" jsonschema:"title=reasoning,description=Short justification for the chosen boundary."`
}

// Valid reports whether the decision addresses the given window size.
func (d *SplitDecision) Valid(passages int) bool {
	return d.SplitIndex >= 0 && d.SplitIndex <= passages
}

// Genie is the decision-making collaborator consulted for ambiguous split
// points. Implementations must be safe for sequential reuse; failures are
// surfaced to the caller, never retried here.
type Genie interface {
	// Split adjudicates one candidate window.
	Split(ctx context.Context, req *SplitRequest) (*SplitDecision, error)
	// Ask sends a free-form prompt and returns the raw answer.
	Ask(ctx context.Context, prompt string) (string, error)
}
