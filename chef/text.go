package chef

import (
	"bytes"
	"context"
	"io"
)

// TextParser passes plain text through with line endings normalized to \n.
type TextParser struct{}

var _ Parser = (*TextParser)(nil)

func (p *TextParser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	bs, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	bs = bytes.ReplaceAll(bs, []byte("\r\n"), []byte("\n"))
	_, err = writer.Write(bs)
	return err
}
