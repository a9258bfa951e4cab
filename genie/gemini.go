package genie

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	gemini "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// NewGeminiClient builds a generative-ai client from an API key.
func NewGeminiClient(ctx context.Context, apiKey string) (*gemini.Client, error) {
	return gemini.NewClient(ctx, option.WithAPIKey(apiKey))
}

// Gemini is a genie backed by Google's generative models. Split decisions are
// requested as JSON responses and decoded into SplitDecision.
type Gemini struct {
	clt *gemini.Client

	Options
}

var _ Genie = (*Gemini)(nil)

// NewGemini creates a genie from a generative-ai client.
func NewGemini(clt *gemini.Client, opts ...Option) *Gemini {
	ret := &Gemini{
		clt: clt,
	}
	for _, opt := range opts {
		opt(&ret.Options)
	}
	return ret
}

// Split adjudicates one candidate window.
func (g *Gemini) Split(ctx context.Context, req *SplitRequest) (*SplitDecision, error) {
	model := g.clt.GenerativeModel(g.model)
	model.ResponseMIMEType = "application/json"
	if g.temperature > 0 {
		model.SetTemperature(g.temperature)
	}
	if g.maxTokens > 0 {
		model.SetMaxOutputTokens(int32(g.maxTokens))
	}
	prompt := req.Prompt() + "\nRespond as JSON: {\"split_index\": <number>, \"reasoning\": <string>}"
	raw, err := g.generate(ctx, model, prompt)
	if err != nil {
		return nil, err
	}
	decision := new(SplitDecision)
	if err := json.Unmarshal([]byte(raw), decision); err != nil {
		return nil, errors.New("unparseable oracle response: " + raw)
	}
	return decision, nil
}

// Ask sends a free-form prompt and returns the raw answer text.
func (g *Gemini) Ask(ctx context.Context, prompt string) (string, error) {
	model := g.clt.GenerativeModel(g.model)
	if g.temperature > 0 {
		model.SetTemperature(g.temperature)
	}
	if g.maxTokens > 0 {
		model.SetMaxOutputTokens(int32(g.maxTokens))
	}
	return g.generate(ctx, model, prompt)
}

func (g *Gemini) generate(ctx context.Context, model *gemini.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, gemini.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("empty oracle response")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(gemini.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}
