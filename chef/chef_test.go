package chef

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

// stubParser writes a fixed string regardless of input.
type stubParser struct {
	out string
}

func (p *stubParser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	_, err := io.WriteString(writer, p.out)
	return err
}

func TestProcessPlainText(t *testing.T) {
	c := New()
	got, err := c.Process(context.Background(), []byte("hello\r\nworld"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello\nworld" {
		t.Errorf("got %q, want line endings normalized", got)
	}
}

func TestProcessHTML(t *testing.T) {
	c := New()
	html := "<!DOCTYPE html><html><body><h1>Title</h1><p>Some paragraph text.</p></body></html>"
	got, err := c.Process(context.Background(), []byte(html))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Title") || !strings.Contains(got, "Some paragraph text.") {
		t.Errorf("markdown output missing content: %q", got)
	}
	if strings.Contains(got, "<h1>") {
		t.Errorf("output should not contain html tags: %q", got)
	}
}

func TestProcessHTMLTitle(t *testing.T) {
	c := New()
	html := "<!DOCTYPE html><html><head><title>My Page</title></head><body><p>Body text.</p></body></html>"
	got, err := c.Process(context.Background(), []byte(html))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(got, "# My Page") {
		t.Errorf("page title should lead the output: %q", got)
	}
}

func TestProcessUnknownFormat(t *testing.T) {
	c := New()
	// jpeg magic bytes have no registered parser
	if _, err := c.Process(context.Background(), []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

func TestRegisterOverride(t *testing.T) {
	c := New()
	c.Register("text/plain", &stubParser{out: "custom"})
	got, err := c.Process(context.Background(), []byte("anything"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "custom" {
		t.Errorf("got %q, want the registered parser's output", got)
	}
}
