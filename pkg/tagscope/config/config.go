// Package config loads tag scope definitions from YAML or JSON files.
//
// A definition file declares tags under a top-level "tags" key. Each
// tag is either a list of member values (a simple tag) or an
// expression string (a composite tag):
//
//	tags:
//	  web: [server-1, server-2]
//	  database: [server-3]
//	  production: [server-1, server-2, server-3]
//	  critical: "production & database"
//
// Expressions are evaluated lazily by the scope, so a composite tag
// may reference tags declared later in the file; declaration order
// never matters.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/tagscope/pkg/tagscope"
)

// Definition is a decoded scope definition file.
type Definition struct {
	// Tags maps tag names to their definitions.
	Tags map[string]TagDef `yaml:"tags" json:"tags"`
}

// TagDef is one tag's definition: an expression string or a list of
// member values, never both.
type TagDef struct {
	// Expression is set for composite tags.
	Expression string
	// Objects is set for simple tags.
	Objects []any
}

// UnmarshalYAML decodes a scalar as an expression and a sequence as a
// list of member values.
func (d *TagDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&d.Expression)
	case yaml.SequenceNode:
		return node.Decode(&d.Objects)
	default:
		return fmt.Errorf("line %d: tag definition must be an expression string or a list of values", node.Line)
	}
}

// UnmarshalJSON decodes a string as an expression and an array as a
// list of member values.
func (d *TagDef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("empty tag definition")
	}
	switch trimmed[0] {
	case '"':
		return json.Unmarshal(data, &d.Expression)
	case '[':
		return json.Unmarshal(data, &d.Objects)
	default:
		return fmt.Errorf("tag definition must be an expression string or an array of values")
	}
}

// FromFile loads a scope definition from a file, auto-detecting format
// by extension. Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("read definition file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Definition{}, fmt.Errorf("unsupported definition file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a Definition.
func FromYAML(data []byte) (Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("parse yaml: %w", err)
	}
	return d, nil
}

// FromJSON parses JSON data into a Definition.
func FromJSON(data []byte) (Definition, error) {
	var d Definition
	if err := json.Unmarshal(data, &d); err != nil {
		return Definition{}, fmt.Errorf("parse json: %w", err)
	}
	return d, nil
}

// Apply defines every tag of the definition on the scope.
func (d Definition) Apply(scope *tagscope.Scope) error {
	for name, def := range d.Tags {
		var err error
		if def.Expression != "" {
			_, err = scope.DefineExpression(name, def.Expression)
		} else {
			_, err = scope.DefineObjects(name, def.Objects...)
		}
		if err != nil {
			return fmt.Errorf("define tag %q: %w", name, err)
		}
	}
	return nil
}

// Load reads a definition file and applies it to a fresh scope.
func Load(path string, opts ...tagscope.Option) (*tagscope.Scope, error) {
	d, err := FromFile(path)
	if err != nil {
		return nil, err
	}
	scope := tagscope.NewScope(opts...)
	if err := d.Apply(scope); err != nil {
		return nil, err
	}
	return scope, nil
}
