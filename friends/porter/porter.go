// Package porter exports chunk sequences to durable formats.
package porter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/xid"

	"github.com/bububa/chunklet/types"
)

// JSONPorter writes chunks as a JSON array.
type JSONPorter struct {
	indent bool
}

type JSONOption func(*JSONPorter)

// WithIndent enables pretty-printed output.
func WithIndent(indent bool) JSONOption {
	return func(p *JSONPorter) {
		p.indent = indent
	}
}

func NewJSONPorter(opts ...JSONOption) *JSONPorter {
	ret := new(JSONPorter)
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Export writes the chunk sequence to w.
func (p *JSONPorter) Export(chunks []types.Chunk, w io.Writer) error {
	enc := json.NewEncoder(w)
	if p.indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(chunks)
}

// ExportFile writes the chunk sequence to a file and returns its path. An
// empty path gets a generated file name.
func (p *JSONPorter) ExportFile(chunks []types.Chunk, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("chunks_%s.json", xid.New().String())
	}
	fh, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer fh.Close()
	if err := p.Export(chunks, fh); err != nil {
		return "", err
	}
	return path, nil
}
