package genie

import (
	"context"
	"errors"

	"github.com/bububa/instructor-go/pkg/instructor"
	cohere "github.com/cohere-ai/cohere-go/v2"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"
)

// Instructor is a genie backed by an instructor-go client, giving structured
// split decisions from OpenAI, Anthropic or Cohere models. Retry policy lives
// in the instructor client, not here.
type Instructor struct {
	clt instructor.Instructor

	Options
}

var _ Genie = (*Instructor)(nil)

// NewInstructor creates a genie from an instructor client.
func NewInstructor(clt instructor.Instructor, opts ...Option) *Instructor {
	ret := &Instructor{
		clt: clt,
	}
	for _, opt := range opts {
		opt(&ret.Options)
	}
	return ret
}

// Split adjudicates one candidate window via a structured completion.
func (g *Instructor) Split(ctx context.Context, req *SplitRequest) (*SplitDecision, error) {
	decision := new(SplitDecision)
	if err := g.complete(ctx, req.Prompt(), decision); err != nil {
		return nil, err
	}
	return decision, nil
}

// Ask sends a free-form prompt and returns the raw answer text.
func (g *Instructor) Ask(ctx context.Context, prompt string) (string, error) {
	answer := new(textAnswer)
	if err := g.complete(ctx, prompt, answer); err != nil {
		return "", err
	}
	return answer.Answer, nil
}

type textAnswer struct {
	Answer string `json:"answer" jsonschema:"title=answer,description=The answer to the question."`
}

func (g *Instructor) complete(ctx context.Context, prompt string, response any) error {
	switch clt := g.clt.(type) {
	case *instructor.InstructorOpenAI:
		chatReq := openai.ChatCompletionRequest{
			Model:               g.model,
			Temperature:         g.temperature,
			MaxCompletionTokens: g.maxTokens,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		}
		if _, err := clt.CreateChatCompletion(ctx, chatReq, response); err != nil {
			return err
		}
	case *instructor.InstructorAnthropic:
		chatReq := anthropic.MessagesRequest{
			Model:       anthropic.Model(g.model),
			Temperature: &g.temperature,
			MaxTokens:   g.maxTokens,
			Messages: []anthropic.Message{
				anthropic.NewUserTextMessage(prompt),
			},
		}
		if _, err := clt.CreateMessages(ctx, chatReq, response); err != nil {
			return err
		}
	case *instructor.InstructorCohere:
		temperature := float64(g.temperature)
		chatReq := cohere.ChatRequest{
			Model:       &g.model,
			Temperature: &temperature,
			MaxTokens:   &g.maxTokens,
			Message:     prompt,
		}
		if _, err := clt.Chat(ctx, &chatReq, response); err != nil {
			return err
		}
	default:
		return errors.New("unsupported instructor client")
	}
	return nil
}
