package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("chunk_size", "must be positive, got %d", -1)
	if !strings.Contains(err.Error(), "chunk_size") {
		t.Errorf("missing field name in %q", err.Error())
	}
	if !IsConfigError(err) {
		t.Error("IsConfigError should match a ConfigError")
	}
	wrapped := fmt.Errorf("building chunker: %w", err)
	if !IsConfigError(wrapped) {
		t.Error("IsConfigError should match a wrapped ConfigError")
	}
	if IsConfigError(errors.New("other")) {
		t.Error("IsConfigError matched an unrelated error")
	}
}

func TestOracleError(t *testing.T) {
	cause := errors.New("timeout")
	err := NewOracleError(3, cause)
	if !IsOracleError(err) {
		t.Error("IsOracleError should match an OracleError")
	}
	if !errors.Is(err, cause) {
		t.Error("OracleError should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "3") {
		t.Errorf("missing boundary in %q", err.Error())
	}
}

func TestRecursiveLevelValidate(t *testing.T) {
	tests := []struct {
		name    string
		level   RecursiveLevel
		wantErr bool
	}{
		{name: "delimiters", level: RecursiveLevel{Delimiters: []string{". "}, IncludeDelim: DelimPrev}},
		{name: "whitespace", level: RecursiveLevel{Whitespace: true}},
		{name: "terminal", level: RecursiveLevel{}},
		{name: "both", level: RecursiveLevel{Delimiters: []string{". "}, Whitespace: true}, wantErr: true},
		{name: "empty delimiter", level: RecursiveLevel{Delimiters: []string{""}}, wantErr: true},
		{name: "bad include", level: RecursiveLevel{Delimiters: []string{". "}, IncludeDelim: "both"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.level.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr && err != nil && !IsConfigError(err) {
				t.Errorf("expected a ConfigError, got %T", err)
			}
		})
	}
}

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()
	if err := rules.Validate(); err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}
	if !rules.Level(rules.Len() - 1).Terminal() {
		t.Error("default rules should end with a terminal level")
	}
	if rules.Level(rules.Len() + 5).Terminal() != true {
		t.Error("out-of-range levels should be terminal")
	}
}

func TestChunkID(t *testing.T) {
	a := Chunk{Text: "hello", StartIndex: 0, EndIndex: 5}
	b := Chunk{Text: "hello", StartIndex: 0, EndIndex: 5}
	c := Chunk{Text: "hello", StartIndex: 1, EndIndex: 6}
	if a.ID() != b.ID() {
		t.Error("identical chunks should share an ID")
	}
	if a.ID() == c.ID() {
		t.Error("chunks at different offsets should not share an ID")
	}
}

func TestCopyChunks(t *testing.T) {
	src := []Chunk{
		{Text: "a", Context: &Context{Text: "ctx"}},
		{Text: "b"},
	}
	dup := CopyChunks(src)
	dup[0].Context.Text = "changed"
	dup[1].Text = "changed"
	if src[0].Context.Text != "ctx" {
		t.Error("copy should detach Context")
	}
	if src[1].Text != "b" {
		t.Error("copy should not alias the source slice")
	}
}
