package chunker

import (
	"context"
	"errors"
	"testing"

	"github.com/bububa/chunklet/genie"
	"github.com/bububa/chunklet/types"
)

// scriptedGenie replays a fixed list of split decisions.
type scriptedGenie struct {
	decisions []int
	err       error
	calls     int
}

var _ genie.Genie = (*scriptedGenie)(nil)

func (g *scriptedGenie) Split(ctx context.Context, req *genie.SplitRequest) (*genie.SplitDecision, error) {
	if g.err != nil {
		return nil, g.err
	}
	idx := 0
	if g.calls < len(g.decisions) {
		idx = g.decisions[g.calls]
	}
	g.calls++
	return &genie.SplitDecision{SplitIndex: idx}, nil
}

func (g *scriptedGenie) Ask(ctx context.Context, prompt string) (string, error) {
	return "", nil
}

const slumberText = "alpha one.\n\nbeta two.\n\ngamma three."

func newSlumber(t *testing.T, g genie.Genie) *SlumberChunker {
	t.Helper()
	c, err := NewSlumberChunker(
		WithGenie(g),
		WithChunkSize(24),
		WithCandidateSize(12),
	)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestSlumberChunkerSplitsAtOracleBoundary(t *testing.T) {
	g := &scriptedGenie{decisions: []int{1, 1}}
	c := newSlumber(t, g)
	chunks, err := c.Chunk(context.Background(), slumberText)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	assertTiling(t, slumberText, chunks)
	if g.calls != 2 {
		t.Errorf("oracle consulted %d times, want 2", g.calls)
	}
}

func TestSlumberChunkerKeepsWindowTogether(t *testing.T) {
	g := &scriptedGenie{decisions: []int{0}}
	c := newSlumber(t, g)
	chunks, err := c.Chunk(context.Background(), slumberText)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if chunks[0].Text != "alpha one.\n\nbeta two.\n\n" {
		t.Errorf("first chunk should span the whole window, got %q", chunks[0].Text)
	}
	assertTiling(t, slumberText, chunks)
	if g.calls != 1 {
		t.Errorf("single-passage windows should skip the oracle, got %d calls", g.calls)
	}
}

func TestSlumberChunkerOracleFailure(t *testing.T) {
	g := &scriptedGenie{err: errors.New("model unavailable")}
	c := newSlumber(t, g)
	if _, err := c.Chunk(context.Background(), slumberText); !types.IsOracleError(err) {
		t.Errorf("expected an OracleError, got %v", err)
	}
}

func TestSlumberChunkerInvalidDecision(t *testing.T) {
	g := &scriptedGenie{decisions: []int{99}}
	c := newSlumber(t, g)
	if _, err := c.Chunk(context.Background(), slumberText); !types.IsOracleError(err) {
		t.Errorf("expected an OracleError for an out-of-range index, got %v", err)
	}
}

func TestSlumberChunkerConfig(t *testing.T) {
	if _, err := NewSlumberChunker(); !types.IsConfigError(err) {
		t.Errorf("expected a ConfigError without a genie, got %v", err)
	}
	g := &scriptedGenie{}
	if _, err := NewSlumberChunker(WithGenie(g), WithCandidateSize(0)); !types.IsConfigError(err) {
		t.Errorf("expected a ConfigError for zero candidate size, got %v", err)
	}
	if _, err := NewSlumberChunker(WithGenie(g), WithChunkSize(10), WithCandidateSize(20)); !types.IsConfigError(err) {
		t.Errorf("expected a ConfigError when candidates exceed the chunk size, got %v", err)
	}
}
