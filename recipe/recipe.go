// Package recipe loads named splitting rule presets. Recipes ship embedded
// for common languages and can also be read from YAML files on disk.
package recipe

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bububa/chunklet/types"
)

//go:embed recipes/*.yaml
var recipesFS embed.FS

// Level is one splitting level of a recipe, mirroring types.RecursiveLevel.
type Level struct {
	// Delimiters are literal split markers tried in order
	Delimiters []string `yaml:"delimiters,omitempty" json:"delimiters,omitempty"`
	// IncludeDelim attaches the matched delimiter to "prev", "next" or neither
	IncludeDelim string `yaml:"include_delim,omitempty" json:"include_delim,omitempty"`
	// Whitespace splits on whitespace runs instead of delimiters
	Whitespace bool `yaml:"whitespace,omitempty" json:"whitespace,omitempty"`
}

// Recipe is a named, language-tagged splitting rule preset.
type Recipe struct {
	Name     string  `yaml:"name" json:"name"`
	Language string  `yaml:"lang" json:"lang"`
	Rules    []Level `yaml:"rules" json:"rules"`
}

// Load returns the embedded recipe for the given name and language.
func Load(name, lang string) (*Recipe, error) {
	if name == "" {
		name = "default"
	}
	if lang == "" {
		lang = "en"
	}
	bs, err := recipesFS.ReadFile(fmt.Sprintf("recipes/%s_%s.yaml", name, lang))
	if err != nil {
		if _, ok := err.(*fs.PathError); ok {
			return nil, types.NewConfigError("recipe", "unknown recipe %q for language %q", name, lang)
		}
		return nil, err
	}
	return parse(bs)
}

// LoadPath reads a recipe from a YAML file on disk.
func LoadPath(path string) (*Recipe, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()
	return FromReader(fh)
}

// FromReader parses a YAML recipe from r.
func FromReader(r io.Reader) (*Recipe, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(bs)
}

func parse(bs []byte) (*Recipe, error) {
	ret := new(Recipe)
	if err := yaml.Unmarshal(bs, ret); err != nil {
		return nil, types.NewConfigError("recipe", "invalid recipe yaml: %v", err)
	}
	if len(ret.Rules) == 0 {
		return nil, types.NewConfigError("recipe", "recipe %q declares no rules", ret.Name)
	}
	return ret, nil
}

// RecursiveRules converts the recipe into validated splitting rules.
func (r *Recipe) RecursiveRules() (types.RecursiveRules, error) {
	levels := make([]types.RecursiveLevel, len(r.Rules))
	for i, lv := range r.Rules {
		var include types.DelimInclude
		switch lv.IncludeDelim {
		case "", "none":
			include = types.DelimNone
		case "prev":
			include = types.DelimPrev
		case "next":
			include = types.DelimNext
		default:
			return types.RecursiveRules{}, types.NewConfigError("include_delim", "must be prev, next or none, got %q", lv.IncludeDelim)
		}
		levels[i] = types.RecursiveLevel{
			Delimiters:   lv.Delimiters,
			Whitespace:   lv.Whitespace,
			IncludeDelim: include,
		}
	}
	rules := types.RecursiveRules{Levels: levels}
	if err := rules.Validate(); err != nil {
		return types.RecursiveRules{}, err
	}
	return rules, nil
}
