package tokenizer

import (
	"strings"
	"sync"

	"github.com/clipperhouse/uax29/graphemes"
	"github.com/clipperhouse/uax29/phrases"
	"github.com/clipperhouse/uax29/sentences"
	"github.com/clipperhouse/uax29/words"
)

// Character treats every rune as one token. Encode/Decode round-trip exactly,
// which makes it the reference backend for offset arithmetic in tests.
type Character struct{}

var _ Tokenizer = (*Character)(nil)

func (c *Character) Count(text string) int {
	return len([]rune(text))
}

func (c *Character) Encode(text string) []int {
	runes := []rune(text)
	ids := make([]int, len(runes))
	for i, r := range runes {
		ids[i] = int(r)
	}
	return ids
}

func (c *Character) Decode(ids []int) string {
	runes := make([]rune, len(ids))
	for i, id := range ids {
		runes[i] = rune(id)
	}
	return string(runes)
}

// Word splits on whitespace fields and interns each distinct word into a
// growing vocabulary so ids stay stable within one tokenizer instance.
// Decoding joins words with single spaces, so texts with irregular whitespace
// do not round-trip byte for byte.
type Word struct {
	mu    sync.Mutex
	vocab map[string]int
	items []string
}

var _ Tokenizer = (*Word)(nil)

func NewWord() *Word {
	return &Word{vocab: make(map[string]int)}
}

func (w *Word) Count(text string) int {
	return len(strings.Fields(text))
}

func (w *Word) Encode(text string) []int {
	fields := strings.Fields(text)
	ids := make([]int, 0, len(fields))
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, f := range fields {
		id, ok := w.vocab[f]
		if !ok {
			id = len(w.items)
			w.vocab[f] = id
			w.items = append(w.items, f)
		}
		ids = append(ids, id)
	}
	return ids
}

func (w *Word) Decode(ids []int) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	parts := make([]string, 0, len(ids))
	for _, id := range ids {
		if id >= 0 && id < len(w.items) {
			parts = append(parts, w.items[id])
		}
	}
	return strings.Join(parts, " ")
}

// Counting-only backends built on unicode segmentation. They satisfy Counter
// for components that never need token ids.

type WordsCounter struct{}

func (c WordsCounter) Count(text string) int {
	return len(words.SegmentAll([]byte(text)))
}

type SentencesCounter struct{}

func (c SentencesCounter) Count(text string) int {
	return len(sentences.SegmentAll([]byte(text)))
}

type GraphemesCounter struct{}

func (c GraphemesCounter) Count(text string) int {
	return len(graphemes.SegmentAll([]byte(text)))
}

type PhrasesCounter struct{}

func (c PhrasesCounter) Count(text string) int {
	return len(phrases.SegmentAll([]byte(text)))
}
