package chunker

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/bububa/chunklet/tokenizer"
	"github.com/bububa/chunklet/types"
)

// CodeChunker splits source code along syntax tree boundaries. The input is
// parsed with tree-sitter and top-level nodes are packed into chunks up to the
// token budget; nodes too large for the budget are descended into so a single
// oversized declaration still splits at its inner structure.
type CodeChunker struct {
	Options
	counter  tokenizer.Counter
	language *sitter.Language
}

var _ Chunker = (*CodeChunker)(nil)

// NewCodeChunker creates a CodeChunker for the given tree-sitter grammar.
func NewCodeChunker(opts ...Option) (*CodeChunker, error) {
	ret := &CodeChunker{Options: defaultOptions()}
	for _, opt := range opts {
		opt(&ret.Options)
	}
	if ret.chunkSize <= 0 {
		return nil, types.NewConfigError("chunk_size", "must be positive, got %d", ret.chunkSize)
	}
	if ret.language == nil {
		return nil, types.NewConfigError("language", "a tree-sitter grammar is required")
	}
	ret.counter = ret.effectiveCounter()
	return ret, nil
}

// Chunk parses the source and packs its syntax nodes into token-budgeted
// chunks that tile the input exactly, bytes between nodes included.
func (c *CodeChunker) Chunk(ctx context.Context, text string) ([]types.Chunk, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	parser := sitter.NewParser()
	parser.SetLanguage(c.language)
	tree, err := parser.ParseCtx(ctx, nil, []byte(text))
	if err != nil {
		return nil, err
	}
	defer tree.Close()
	frags := c.splitNode(text, tree.RootNode(), 0)
	if len(frags) == 0 {
		frags = []fragment{{span: span{start: 0, end: len(text)}, level: 0}}
	}
	return assembleFragments(text, frags, c.counter, c.chunkSize), nil
}

// ChunkBatch chunks each source independently, preserving input order.
func (c *CodeChunker) ChunkBatch(ctx context.Context, texts []string) ([][]types.Chunk, error) {
	return chunkBatch(ctx, texts, c.concurrency, c.progress, c.Chunk)
}

// splitNode walks the node's children, descending into any child whose text
// exceeds the budget. Childless oversized nodes are emitted as they are.
func (c *CodeChunker) splitNode(text string, node *sitter.Node, level int) []fragment {
	var out []fragment
	n := int(node.ChildCount())
	for i := 0; i < n; i++ {
		child := node.Child(i)
		s := span{start: int(child.StartByte()), end: int(child.EndByte())}
		if c.counter.Count(text[s.start:s.end]) <= c.chunkSize || child.ChildCount() == 0 {
			out = append(out, fragment{span: s, level: level})
			continue
		}
		out = append(out, c.splitNode(text, child, level+1)...)
	}
	return out
}
