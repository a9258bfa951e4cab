package chunker

import (
	"context"
	"testing"

	"github.com/bububa/chunklet/types"
)

func TestSentenceChunkerBasic(t *testing.T) {
	c, err := NewSentenceChunker(
		WithChunkSize(30),
		WithMinCharactersPerSentence(1),
	)
	if err != nil {
		t.Fatal(err)
	}
	text := "First sentence here. Second sentence here. Third one."
	chunks, err := c.Chunk(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
	assertTiling(t, text, chunks)
	for i, chunk := range chunks {
		if chunk.TokenCount > 30 {
			t.Errorf("chunk %d exceeds budget: %d tokens", i, chunk.TokenCount)
		}
	}
}

func TestSentenceChunkerOverlap(t *testing.T) {
	c, err := NewSentenceChunker(
		WithChunkSize(10),
		WithOverlap(5),
		WithMinCharactersPerSentence(1),
	)
	if err != nil {
		t.Fatal(err)
	}
	text := "a b. c d. e f."
	chunks, err := c.Chunk(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a b. c d. ", "c d. e f."}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks, want %d", len(chunks), len(want))
	}
	for i := range chunks {
		if chunks[i].Text != want[i] {
			t.Errorf("chunk %d: got %q, want %q", i, chunks[i].Text, want[i])
		}
	}
}

func TestSentenceChunkerShortSentenceFolds(t *testing.T) {
	c, err := NewSentenceChunker(WithChunkSize(100))
	if err != nil {
		t.Fatal(err)
	}
	sentences := c.Sentences("Hi. This is a long sentence.")
	if len(sentences) != 1 {
		t.Fatalf("short leading split should fold forward, got %d sentences", len(sentences))
	}
	if sentences[0].StartIndex != 0 {
		t.Errorf("folded sentence should start at 0, got %d", sentences[0].StartIndex)
	}
}

func TestSentenceChunkerMinSentences(t *testing.T) {
	c, err := NewSentenceChunker(
		WithChunkSize(4),
		WithMinSentencesPerChunk(2),
		WithMinCharactersPerSentence(1),
	)
	if err != nil {
		t.Fatal(err)
	}
	text := "a. b. c. d."
	chunks, err := c.Chunk(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}
	assertTiling(t, text, chunks)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
}

func TestSentenceChunkerDroppedDelimitersStillTile(t *testing.T) {
	c, err := NewSentenceChunker(
		WithChunkSize(3),
		WithDelimiters([]string{","}, types.DelimNone),
		WithMinCharactersPerSentence(1),
	)
	if err != nil {
		t.Fatal(err)
	}
	text := "aa,bb,cc"
	chunks, err := c.Chunk(context.Background(), text)
	if err != nil {
		t.Fatal(err)
	}
	assertTiling(t, text, chunks)
	if len(chunks) != 3 {
		t.Fatalf("got %d chunks, want 3", len(chunks))
	}
}

func TestSentenceChunkerConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{name: "zero chunk size", opts: []Option{WithChunkSize(0)}},
		{name: "overlap too large", opts: []Option{WithChunkSize(4), WithOverlap(5)}},
		{name: "zero min sentences", opts: []Option{WithMinSentencesPerChunk(0)}},
		{name: "zero min characters", opts: []Option{WithMinCharactersPerSentence(0)}},
		{name: "conflicting delimiters", opts: []Option{WithDelimiters([]string{""}, types.DelimPrev)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSentenceChunker(tt.opts...); !types.IsConfigError(err) {
				t.Errorf("expected a ConfigError, got %v", err)
			}
		})
	}
}
