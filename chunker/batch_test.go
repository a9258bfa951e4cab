package chunker

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/bububa/chunklet/tokenizer"
)

func TestChunkBatchPreservesOrder(t *testing.T) {
	for _, concurrency := range []int{0, 4} {
		c, err := NewTokenChunker(
			WithChunkSize(4),
			WithTokenizer(new(tokenizer.Character)),
			WithConcurrency(concurrency),
		)
		if err != nil {
			t.Fatal(err)
		}
		texts := []string{"abcdefgh", "xy", "", "0123456789"}
		results, err := c.ChunkBatch(context.Background(), texts)
		if err != nil {
			t.Fatal(err)
		}
		if len(results) != len(texts) {
			t.Fatalf("got %d results, want %d", len(results), len(texts))
		}
		wantCounts := []int{2, 1, 0, 3}
		for i, chunks := range results {
			if len(chunks) != wantCounts[i] {
				t.Errorf("concurrency %d, text %d: got %d chunks, want %d", concurrency, i, len(chunks), wantCounts[i])
			}
			if len(chunks) > 0 && !strings.HasPrefix(texts[i], chunks[0].Text) {
				t.Errorf("concurrency %d, text %d: results out of order", concurrency, i)
			}
		}
	}
}

func TestChunkBatchProgress(t *testing.T) {
	var (
		mu    sync.Mutex
		calls int
		last  int
	)
	c, err := NewTokenChunker(
		WithChunkSize(4),
		WithTokenizer(new(tokenizer.Character)),
		WithConcurrency(3),
		WithProgress(func(done, total int) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			if done > last {
				last = done
			}
			if total != 3 {
				t.Errorf("total = %d, want 3", total)
			}
		}),
	)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.ChunkBatch(context.Background(), []string{"aaaa", "bbbb", "cccc"}); err != nil {
		t.Fatal(err)
	}
	mu.Lock()
	defer mu.Unlock()
	if calls != 3 || last != 3 {
		t.Errorf("progress calls = %d, last done = %d, want 3 and 3", calls, last)
	}
}

func TestChunkBatchEmpty(t *testing.T) {
	c, err := NewTokenChunker(WithTokenizer(new(tokenizer.Character)))
	if err != nil {
		t.Fatal(err)
	}
	results, err := c.ChunkBatch(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if results != nil {
		t.Errorf("empty batch should return nil, got %v", results)
	}
}
