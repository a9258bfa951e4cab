package chef

import (
	"bytes"
	"context"
	"io"

	"github.com/fumiama/go-docx"
)

// DocxParser extracts paragraph and table text from docx documents.
type DocxParser struct{}

var _ Parser = (*DocxParser)(nil)

// Parse writes the document body as paragraph-separated text.
func (p *DocxParser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	doc, err := docx.Parse(reader, reader.Size())
	if err != nil {
		return err
	}
	for idx, it := range doc.Document.Body.Items {
		var content string
		switch t := it.(type) {
		case *docx.Paragraph:
			content = t.String()
		case *docx.Table:
			content = t.String()
		}
		if idx > 0 {
			if _, err := writer.Write([]byte{'\n', '\n'}); err != nil {
				return err
			}
		}
		if _, err := writer.Write([]byte(content)); err != nil {
			return err
		}
	}
	return nil
}
