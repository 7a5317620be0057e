package schema

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Declaration is the serialized form of a FormSchema.
//
//	name: login
//	fields:
//	  - name: email
//	    type: email
//	    rules:
//	      - kind: email
//	        message: E-mail inválido
//	      - kind: required
//	        message: Campo obrigatório
//
// A "required" rule sets the field's Required flag regardless of its position.
type Declaration struct {
	Name   string             `yaml:"name" json:"name"`
	Fields []FieldDeclaration `yaml:"fields" json:"fields"`
}

type FieldDeclaration struct {
	Name            string            `yaml:"name" json:"name"`
	Type            string            `yaml:"type,omitempty" json:"type,omitempty"`
	Label           string            `yaml:"label,omitempty" json:"label,omitempty"`
	Placeholder     string            `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Default         string            `yaml:"default,omitempty" json:"default,omitempty"`
	Required        bool              `yaml:"required,omitempty" json:"required,omitempty"`
	RequiredMessage string            `yaml:"required_message,omitempty" json:"required_message,omitempty"`
	Rules           []RuleDeclaration `yaml:"rules,omitempty" json:"rules,omitempty"`
}

type RuleDeclaration struct {
	Kind        string `yaml:"kind" json:"kind"`
	Value       int    `yaml:"value,omitempty" json:"value,omitempty"`
	Pattern     string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Message     string `yaml:"message,omitempty" json:"message,omitempty"`
}

const kindRequired = "required"

// Compile turns the declaration into a FormSchema.
func (d Declaration) Compile() (*FormSchema, error) {
	fields := make([]FieldSchema, 0, len(d.Fields))
	for _, fd := range d.Fields {
		f := FieldSchema{
			Name:            fd.Name,
			Type:            FieldType(fd.Type),
			Label:           fd.Label,
			Placeholder:     fd.Placeholder,
			Default:         fd.Default,
			Required:        fd.Required,
			RequiredMessage: fd.RequiredMessage,
		}
		for i, rd := range fd.Rules {
			if rd.Kind == kindRequired {
				f.Required = true
				if rd.Message != "" {
					f.RequiredMessage = rd.Message
				}
				continue
			}
			c, err := rd.constraint()
			if err != nil {
				return nil, fmt.Errorf("field %q rule[%d]: %w", fd.Name, i, err)
			}
			f.Constraints = append(f.Constraints, c)
		}
		fields = append(fields, f)
	}
	return New(d.Name, fields...)
}

func (rd RuleDeclaration) constraint() (Constraint, error) {
	c := Constraint{
		Kind:        ConstraintKind(rd.Kind),
		Description: rd.Description,
		Message:     rd.Message,
	}
	switch c.Kind {
	case KindMinLength:
		c.Min = rd.Value
	case KindMaxLength:
		c.Max = rd.Value
	case KindPattern:
		re, err := regexp.Compile(rd.Pattern)
		if err != nil {
			return Constraint{}, errors.Join(ErrInvalidConstraint, err)
		}
		c.Pattern = re
	}
	return c, nil
}

// DecodeYAML reads a YAML declaration. Unknown keys are rejected.
func DecodeYAML(r io.Reader) (*FormSchema, error) {
	var d Declaration
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, errors.Join(ErrFailedToDecode, err)
	}
	return d.Compile()
}

// DecodeJSON reads a JSON declaration. Unknown keys are rejected.
func DecodeJSON(r io.Reader) (*FormSchema, error) {
	var d Declaration
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, errors.Join(ErrFailedToDecode, err)
	}
	return d.Compile()
}

// LoadFile reads a declaration from disk, choosing the decoder by extension
// (.yaml, .yml or .json).
func LoadFile(path string) (*FormSchema, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	var decode func(io.Reader) (*FormSchema, error)
	switch ext {
	case "yaml", "yml":
		decode = DecodeYAML
	case "json":
		decode = DecodeJSON
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadSchema, err)
	}
	defer f.Close()

	return decode(f)
}
