// Package schema declares which database properties make up a flattened record.
package schema

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/saturnines/notion-verbs/pkg/errors"
)

//go:embed verbs.yaml
var verbsYAML []byte

// Schema is an ordered list of fields to extract
type Schema struct {
	Name   string  `yaml:"name"`
	Fields []Field `yaml:"fields"`
}

// Field names one database property
type Field struct {
	Name        string `yaml:"name"`                  // Property name, also the output key
	Description string `yaml:"description,omitempty"` // Optional description
}

// Parse parses and validates a yaml schema
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.WrapError(err, errors.ErrConfiguration, "parse schema YAML")
	}
	if err := s.Validate(); err != nil {
		return nil, errors.WrapError(err, errors.ErrValidation, fmt.Sprintf("schema %q", s.Name))
	}
	return &s, nil
}

// Validate checks that there is at least one field and every name is unique and non-empty
func (s *Schema) Validate() error {
	if len(s.Fields) == 0 {
		return fmt.Errorf("at least one field is required")
	}

	seen := make(map[string]struct{}, len(s.Fields))
	for i, f := range s.Fields {
		name := strings.TrimSpace(f.Name)
		if name == "" {
			return fmt.Errorf("fields[%d].name is required", i)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("fields[%d].name %q is duplicated", i, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Names returns the field names in order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// Verbs returns the built-in 16-field vocabulary schema.
// It panics if the embedded document is invalid, which is a build defect.
func Verbs() *Schema {
	s, err := Parse(verbsYAML)
	if err != nil {
		panic(err)
	}
	return s
}
