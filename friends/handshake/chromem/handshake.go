package chromem

import (
	"context"

	"github.com/philippgille/chromem-go"

	"github.com/bububa/chunklet/friends/handshake"
	"github.com/bububa/chunklet/types"
)

// Handshake writes embedded chunks into a chromem collection.
type Handshake struct {
	db         *chromem.DB
	embedder   handshake.Embedder
	collection string
}

var _ handshake.Handshake = (*Handshake)(nil)

type Option func(*Handshake)

// WithCollection sets the target collection name.
func WithCollection(name string) Option {
	return func(h *Handshake) {
		h.collection = name
	}
}

func New(db *chromem.DB, embedder handshake.Embedder, opts ...Option) *Handshake {
	ret := &Handshake{
		db:         db,
		embedder:   embedder,
		collection: "chunks",
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Write embeds the chunks in one batch and adds them as documents. Document
// IDs are derived from chunk content, so rewriting the same chunks is
// idempotent.
func (h *Handshake) Write(ctx context.Context, chunks []types.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	col, err := h.db.GetOrCreateCollection(h.collection, nil, nil)
	if err != nil {
		return err
	}
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	vecs, err := h.embedder.BatchEmbed(ctx, texts)
	if err != nil {
		return err
	}
	for i, c := range chunks {
		doc := chromem.Document{
			ID:        c.ID(),
			Content:   c.Text,
			Metadata:  handshake.ChunkMeta(&c),
			Embedding: vecs[i],
		}
		if err := col.AddDocument(ctx, doc); err != nil {
			return err
		}
	}
	return nil
}
