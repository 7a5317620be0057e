package schema

import (
	"fmt"
	"regexp"
	"slices"
)

// FieldType tells renderers how to present a field. It adds no constraint.
type FieldType string

const (
	TypeString   FieldType = "string"
	TypeEmail    FieldType = "email"
	TypePassword FieldType = "password"
)

func (t FieldType) valid() bool {
	switch t {
	case TypeString, TypeEmail, TypePassword:
		return true
	}
	return false
}

// ConstraintKind identifies a constraint variant.
type ConstraintKind string

const (
	KindEmail     ConstraintKind = "email"
	KindMinLength ConstraintKind = "min_length"
	KindMaxLength ConstraintKind = "max_length"
	KindPattern   ConstraintKind = "pattern"
)

// Constraint is a tagged variant: Kind selects which of Min, Max or Pattern applies.
// An empty Message falls back to the rule's default message.
type Constraint struct {
	Kind    ConstraintKind
	Min     int
	Max     int
	Pattern *regexp.Regexp
	// Description names the pattern in default messages.
	Description string
	Message     string
}

// FieldSchema declares one form field. The required check always runs before Constraints.
type FieldSchema struct {
	Name            string
	Type            FieldType
	Label           string
	Placeholder     string
	Default         string
	Required        bool
	RequiredMessage string
	Constraints     []Constraint
}

// FormSchema is an immutable, ordered set of field declarations.
type FormSchema struct {
	name   string
	fields []FieldSchema
	index  map[string]int
}

// New validates the declarations and builds a FormSchema.
// Field names must be non-empty and unique.
func New(name string, fields ...FieldSchema) (*FormSchema, error) {
	s := &FormSchema{
		name:   name,
		fields: make([]FieldSchema, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("field[%d]: %w", i, ErrEmptyFieldName)
		}
		if _, exists := s.index[f.Name]; exists {
			return nil, fmt.Errorf("field %q: %w", f.Name, ErrDuplicateField)
		}
		if f.Type == "" {
			f.Type = TypeString
		}
		if !f.Type.valid() {
			return nil, fmt.Errorf("field %q: %w: %q", f.Name, ErrUnknownFieldType, f.Type)
		}
		for j, c := range f.Constraints {
			if err := checkConstraint(c); err != nil {
				return nil, fmt.Errorf("field %q constraint[%d]: %w", f.Name, j, err)
			}
		}

		f.Constraints = slices.Clone(f.Constraints)
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	return s, nil
}

// MustNew is like New but panics on invalid declarations.
func MustNew(name string, fields ...FieldSchema) *FormSchema {
	s, err := New(name, fields...)
	if err != nil {
		panic(fmt.Sprintf("failed to build form schema %q: %v", name, err))
	}
	return s
}

func checkConstraint(c Constraint) error {
	switch c.Kind {
	case KindEmail:
		return nil
	case KindMinLength:
		if c.Min < 0 {
			return fmt.Errorf("%w: min_length must be >= 0", ErrInvalidConstraint)
		}
	case KindMaxLength:
		if c.Max < 0 {
			return fmt.Errorf("%w: max_length must be >= 0", ErrInvalidConstraint)
		}
	case KindPattern:
		if c.Pattern == nil {
			return fmt.Errorf("%w: pattern is nil", ErrInvalidConstraint)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownConstraint, c.Kind)
	}
	return nil
}

// Name returns the form name.
func (s *FormSchema) Name() string { return s.name }

// Len returns the number of declared fields.
func (s *FormSchema) Len() int { return len(s.fields) }

// Field looks up a declaration by name.
func (s *FormSchema) Field(name string) (FieldSchema, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSchema{}, false
	}
	f := s.fields[i]
	f.Constraints = slices.Clone(f.Constraints)
	return f, true
}

// Fields returns the declarations in declaration order.
func (s *FormSchema) Fields() []FieldSchema {
	out := slices.Clone(s.fields)
	for i := range out {
		out[i].Constraints = slices.Clone(out[i].Constraints)
	}
	return out
}

// Names returns field names in declaration order.
func (s *FormSchema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}
