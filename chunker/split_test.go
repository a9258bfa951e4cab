package chunker

import (
	"testing"

	"github.com/bububa/chunklet/types"
)

func spanTexts(text string, spans []span) []string {
	out := make([]string, len(spans))
	for i, s := range spans {
		out[i] = text[s.start:s.end]
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSplitDelimiters(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		delims  []string
		include types.DelimInclude
		want    []string
	}{
		{
			name:    "attach prev",
			text:    "a. b. c",
			delims:  []string{". "},
			include: types.DelimPrev,
			want:    []string{"a. ", "b. ", "c"},
		},
		{
			name:    "attach next",
			text:    "a. b. c",
			delims:  []string{". "},
			include: types.DelimNext,
			want:    []string{"a", ". b", ". c"},
		},
		{
			name:    "drop delimiter",
			text:    "a,b,c",
			delims:  []string{","},
			include: types.DelimNone,
			want:    []string{"a", "b", "c"},
		},
		{
			name:    "declared order wins ties",
			text:    "x\r\ny",
			delims:  []string{"\r\n", "\r"},
			include: types.DelimPrev,
			want:    []string{"x\r\n", "y"},
		},
		{
			name:    "no match",
			text:    "plain",
			delims:  []string{". "},
			include: types.DelimPrev,
			want:    []string{"plain"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spanTexts(tt.text, splitDelimiters(tt.text, tt.delims, tt.include))
			if !equalStrings(got, tt.want) {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSplitWhitespace(t *testing.T) {
	got := spanTexts(" a  bb\tccc\n", splitWhitespace(" a  bb\tccc\n"))
	want := []string{"a", "bb", "ccc"}
	if !equalStrings(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFoldShort(t *testing.T) {
	tests := []struct {
		name  string
		spans []span
		min   int
		want  []span
	}{
		{
			name:  "short tail folds back",
			spans: []span{{0, 3}, {3, 6}, {6, 7}},
			min:   2,
			want:  []span{{0, 3}, {3, 7}},
		},
		{
			name:  "short head folds forward",
			spans: []span{{0, 1}, {1, 5}},
			min:   2,
			want:  []span{{0, 5}},
		},
		{
			name:  "all short collapse to one",
			spans: []span{{0, 2}, {2, 4}, {4, 6}},
			min:   10,
			want:  []span{{0, 6}},
		},
		{
			name:  "min one is a no-op",
			spans: []span{{0, 1}, {1, 2}},
			min:   1,
			want:  []span{{0, 1}, {1, 2}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := foldShort(tt.spans, tt.min)
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("span %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
