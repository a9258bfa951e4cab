// Package chef turns raw documents into plain text ready for chunking.
// Parsers are selected by sniffed MIME type, so callers can feed bytes of
// unknown provenance.
package chef

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Parser converts one document format into chunkable text.
type Parser interface {
	Parse(context.Context, *bytes.Reader, io.Writer) error
}

// Chef routes documents to format parsers by MIME type.
type Chef struct {
	parsers map[string]Parser
}

// New creates a Chef with the built-in parsers for plain text, HTML, PDF,
// docx and xlsx documents.
func New() *Chef {
	ret := &Chef{parsers: make(map[string]Parser)}
	ret.Register("text/plain", new(TextParser))
	ret.Register("text/html", NewHTMLParser())
	ret.Register("application/pdf", NewPDFParser())
	ret.Register("application/vnd.openxmlformats-officedocument.wordprocessingml.document", new(DocxParser))
	ret.Register("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", NewXlsxParser())
	return ret
}

// Register installs or replaces the parser for a MIME type.
func (c *Chef) Register(mime string, parser Parser) {
	c.parsers[mime] = parser
}

// Parser returns the parser responsible for the sniffed MIME type. Unknown
// text subtypes fall back to the plain text parser.
func (c *Chef) Parser(mime *mimetype.MIME) (Parser, error) {
	for m := mime; m != nil; m = m.Parent() {
		if p, ok := c.parsers[m.String()]; ok {
			return p, nil
		}
	}
	if strings.HasPrefix(mime.String(), "text/") {
		if p, ok := c.parsers["text/plain"]; ok {
			return p, nil
		}
	}
	return nil, fmt.Errorf("no parser for %s", mime.String())
}

// Process sniffs the document type and returns its text content.
func (c *Chef) Process(ctx context.Context, data []byte) (string, error) {
	parser, err := c.Parser(mimetype.Detect(data))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := parser.Parse(ctx, bytes.NewReader(data), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
