package tokenizer

// Counter defines the interface for counting tokens in a string.
// This abstraction allows for different tokenization strategies (e.g., words,
// subwords) and lets components that never need token ids depend on counting
// alone.
type Counter interface {
	// Count returns the number of tokens in the given text according to the
	// implementation's tokenization strategy.
	Count(text string) int
}

// CounterFunc adapts a plain counting function to the Counter interface.
type CounterFunc func(text string) int

func (f CounterFunc) Count(text string) int {
	return f(text)
}

// Tokenizer extends Counter with full encode/decode capability. Chunkers that
// slide fixed token windows require a Tokenizer; everything else accepts a
// Counter.
type Tokenizer interface {
	Counter
	// Encode converts text into a sequence of token ids.
	Encode(text string) []int
	// Decode converts a sequence of token ids back into text.
	Decode(ids []int) string
}

// FromIdentifier selects a tokenizer backend by name. "char"/"character" and
// "word" select the built-in backends; any other identifier is resolved as a
// tiktoken encoding or model name.
func FromIdentifier(id string) (Tokenizer, error) {
	switch id {
	case "char", "character":
		return new(Character), nil
	case "word":
		return NewWord(), nil
	default:
		return NewTiktoken(id)
	}
}
