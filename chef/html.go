package chef

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/PuerkitoBio/goquery"
)

// HTMLParser converts HTML documents to markdown text. The page title becomes
// a top-level heading; script, style and nav elements are dropped.
type HTMLParser struct {
	opts []converter.ConvertOptionFunc
}

var _ Parser = (*HTMLParser)(nil)

func NewHTMLParser(opts ...converter.ConvertOptionFunc) *HTMLParser {
	return &HTMLParser{
		opts: opts,
	}
}

// Parse converts the HTML read from reader into markdown written to writer.
func (p *HTMLParser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return err
	}
	title := strings.TrimSpace(doc.Find("head title").Text())
	for _, tag := range []string{"script", "style", "nav"} {
		doc.Find(tag).Remove()
	}
	html, err := doc.Html()
	if err != nil {
		return err
	}
	bs, err := htmltomarkdown.ConvertString(html, p.opts...)
	if err != nil {
		return err
	}
	if title != "" {
		if _, err := fmt.Fprintf(writer, "# %s\n\n", title); err != nil {
			return err
		}
	}
	_, err = io.WriteString(writer, bs)
	return err
}
