package milvus

import (
	"context"
	"encoding/json"

	milvusClient "github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"

	"github.com/bububa/chunklet/friends/handshake"
	"github.com/bububa/chunklet/types"
)

// Handshake writes embedded chunks into a milvus collection, creating the
// collection and its HNSW index on first use.
type Handshake struct {
	db         milvusClient.Client
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

func New(db milvusClient.Client, embedder handshake.Embedder, opts ...Option) *Handshake {
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

func (h *Handshake) createCollection(ctx context.Context, dim int64) error {
	idField := entity.NewField().WithName("id").WithDataType(entity.FieldTypeVarChar).WithMaxLength(36).WithIsPrimaryKey(true).WithIsAutoID(false)
	vectorField := entity.NewField().WithName("embedding").WithDataType(entity.FieldTypeFloatVector).WithDim(dim)
	contentField := entity.NewField().WithName("content").WithDataType(entity.FieldTypeString)
	metaField := entity.NewField().WithName("meta").WithDataType(entity.FieldTypeJSON).WithIsDynamic(true)
	schema := entity.NewSchema().WithName(h.collection).WithAutoID(false).WithField(idField).WithField(vectorField).WithField(contentField).WithField(metaField)
	if err := h.db.CreateCollection(ctx, schema, 0); err != nil {
		return err
	}
	idxHnsw, err := entity.NewIndexHNSW(entity.COSINE, 8, 200)
	if err != nil {
		return err
	}
	return h.db.CreateIndex(ctx, h.collection, "embedding", idxHnsw, true, milvusClient.WithIndexName("embedding_idx"))
}

// Write embeds the chunks in one batch and inserts them as columns.
func (h *Handshake) Write(ctx context.Context, chunks []types.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}
	vecs, err := h.embedder.BatchEmbed(ctx, texts)
	if err != nil {
		return err
	}
	dim := int64(len(vecs[0]))
	if exists, err := h.db.HasCollection(ctx, h.collection); err != nil {
		return err
	} else if !exists {
		if err := h.createCollection(ctx, dim); err != nil {
			return err
		}
	}
	ids := make([]string, len(chunks))
	contents := make([]string, len(chunks))
	metas := make([][]byte, len(chunks))
	for i, c := range chunks {
		ids[i] = c.ID()
		contents[i] = c.Text
		bs, err := json.Marshal(handshake.ChunkMeta(&c))
		if err != nil {
			return err
		}
		metas[i] = bs
	}
	columns := []entity.Column{
		entity.NewColumnVarChar("id", ids),
		entity.NewColumnFloatVector("embedding", int(dim), vecs),
		entity.NewColumnString("content", contents),
		entity.NewColumnJSONBytes("meta", metas),
	}
	_, err = h.db.Insert(ctx, h.collection, "", columns...)
	return err
}
