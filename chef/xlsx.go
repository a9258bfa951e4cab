package chef

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// XlsxParser renders xlsx workbooks as markdown, one table per sheet.
type XlsxParser struct {
	password string
}

var _ Parser = (*XlsxParser)(nil)

type XlsxParserOption func(*XlsxParser)

func XlsxParserWithPassword(password string) XlsxParserOption {
	return func(p *XlsxParser) {
		p.password = password
	}
}

func NewXlsxParser(opts ...XlsxParserOption) *XlsxParser {
	ret := new(XlsxParser)
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Parse writes each sheet as a markdown table under a sheet-name heading.
func (p *XlsxParser) Parse(ctx context.Context, reader *bytes.Reader, writer io.Writer) error {
	opts := make([]excelize.Options, 0, 1)
	if p.password != "" {
		opts = append(opts, excelize.Options{Password: p.password})
	}
	doc, err := excelize.OpenReader(reader, opts...)
	if err != nil {
		return err
	}
	defer doc.Close()
	for sheetIdx, sheet := range doc.GetSheetList() {
		rows, err := doc.Rows(sheet)
		if err != nil {
			return err
		}
		if sheetIdx > 0 {
			if _, err := io.WriteString(writer, "\n\n"); err != nil {
				return err
			}
		}
		for rowIdx := 0; rows.Next(); rowIdx++ {
			if rowIdx == 0 {
				if _, err := fmt.Fprintf(writer, "# %s\n\n", sheet); err != nil {
					return err
				}
			}
			row, err := rows.Columns()
			if err != nil {
				return err
			}
			cells := make([]string, len(row))
			for i, cell := range row {
				cells[i] = strings.ReplaceAll(strings.TrimSpace(cell), "|", "\\|")
			}
			if _, err := fmt.Fprintf(writer, "| %s |\n", strings.Join(cells, " | ")); err != nil {
				return err
			}
			if rowIdx == 0 {
				seps := make([]string, len(row))
				for i := range seps {
					seps[i] = "---"
				}
				if _, err := fmt.Fprintf(writer, "| %s |\n", strings.Join(seps, " | ")); err != nil {
					return err
				}
			}
		}
		if err := rows.Close(); err != nil {
			return err
		}
	}
	return nil
}
