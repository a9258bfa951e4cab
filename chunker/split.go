package chunker

import (
	"strings"
	"unicode"

	"github.com/bububa/chunklet/types"
)

// span is a fragment boundary pair relative to the text being split.
type span struct {
	start int
	end   int
}

// splitLevel divides text according to one recursive level and returns the
// fragment spans in source order. Dropped delimiters and whitespace runs leave
// gaps between spans; the assembler closes them when chunks are materialized.
func splitLevel(text string, lv types.RecursiveLevel) []span {
	if lv.Whitespace {
		return splitWhitespace(text)
	}
	return splitDelimiters(text, lv.Delimiters, lv.IncludeDelim)
}

// splitDelimiters scans for the earliest delimiter occurrence; when several
// match at the same position the first in declared order wins.
func splitDelimiters(text string, delims []string, include types.DelimInclude) []span {
	var spans []span
	emit := func(start, end int) {
		if end > start {
			spans = append(spans, span{start: start, end: end})
		}
	}
	pieceStart := 0
	searchFrom := 0
	for searchFrom < len(text) {
		pos, width := -1, 0
		for _, d := range delims {
			if i := strings.Index(text[searchFrom:], d); i >= 0 {
				if pos < 0 || i < pos {
					pos, width = i, len(d)
				}
			}
		}
		if pos < 0 {
			break
		}
		p := searchFrom + pos
		switch include {
		case types.DelimPrev:
			emit(pieceStart, p+width)
			pieceStart = p + width
			searchFrom = pieceStart
		case types.DelimNext:
			emit(pieceStart, p)
			pieceStart = p
			searchFrom = p + width
		default:
			emit(pieceStart, p)
			pieceStart = p + width
			searchFrom = pieceStart
		}
	}
	emit(pieceStart, len(text))
	return spans
}

// splitWhitespace splits on maximal whitespace runs.
func splitWhitespace(text string) []span {
	var spans []span
	start := -1
	for i, r := range text {
		if unicode.IsSpace(r) {
			if start >= 0 {
				spans = append(spans, span{start: start, end: i})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		spans = append(spans, span{start: start, end: len(text)})
	}
	return spans
}

// foldShort merges fragments shorter than min characters into the previous
// fragment; only a short leading fragment folds forward into its successor.
// Merged spans cover everything between the two fragments, so no source text
// is lost.
func foldShort(spans []span, min int) []span {
	if min <= 1 || len(spans) < 2 {
		return spans
	}
	var out []span
	pending := -1
	for _, s := range spans {
		if pending >= 0 {
			s.start = pending
			pending = -1
		}
		if s.end-s.start < min {
			if len(out) > 0 {
				out[len(out)-1].end = s.end
			} else {
				pending = s.start
			}
			continue
		}
		out = append(out, s)
	}
	if pending >= 0 {
		// every fragment was short; emit them as one
		out = append(out, span{start: pending, end: spans[len(spans)-1].end})
	}
	return out
}
