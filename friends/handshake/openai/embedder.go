package openai

import (
	"context"

	"github.com/sashabaranov/go-openai"

	"github.com/bububa/chunklet/friends/handshake"
)

// Embedder embeds chunk text through the OpenAI embeddings API.
type Embedder struct {
	clt   *openai.Client
	model string
}

var _ handshake.Embedder = (*Embedder)(nil)

func New(clt *openai.Client, model string) *Embedder {
	if model == "" {
		model = string(openai.SmallEmbedding3)
	}
	return &Embedder{
		clt:   clt,
		model: model,
	}
}

func (e *Embedder) Model() string {
	return e.model
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vecs, err := e.BatchEmbed(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vecs[0], nil
}

func (e *Embedder) BatchEmbed(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := e.clt.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, err
	}
	ret := make([][]float32, len(texts))
	for _, v := range resp.Data {
		ret[v.Index] = v.Embedding
	}
	return ret, nil
}
