package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Tiktoken provides accurate tokenization using the tiktoken library, which
// implements the tokenization schemes used by OpenAI models.
type Tiktoken struct {
	tke *tiktoken.Tiktoken
}

var _ Tokenizer = (*Tiktoken)(nil)

// NewTiktoken creates a Tiktoken backend from an encoding name such as
// "cl100k_base" (GPT-4, ChatGPT), "p50k_base" (GPT-3) or "r50k_base" (Codex).
// If the identifier is not a known encoding it is resolved as a model name.
func NewTiktoken(id string) (*Tiktoken, error) {
	tke, err := tiktoken.GetEncoding(id)
	if err != nil {
		tke, err = tiktoken.EncodingForModel(id)
		if err != nil {
			return nil, fmt.Errorf("failed to get encoding for %q: %w", id, err)
		}
	}
	return &Tiktoken{tke: tke}, nil
}

func (t *Tiktoken) Count(text string) int {
	return len(t.tke.Encode(text, nil, nil))
}

func (t *Tiktoken) Encode(text string) []int {
	return t.tke.Encode(text, nil, nil)
}

func (t *Tiktoken) Decode(ids []int) string {
	return t.tke.Decode(ids)
}
