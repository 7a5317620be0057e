package form

import (
	"maps"
	"slices"

	"github.com/dmitrymomot/loginform/pkg/schema"
)

// FieldState is the live state of one field. Error == "" means no error.
// Stale marks a touched field whose value changed since it was last validated.
type FieldState struct {
	Value   string      `json:"value"`
	Touched bool        `json:"touched"`
	Error   string      `json:"error,omitempty"`
	Status  FieldStatus `json:"status"`
	Stale   bool        `json:"stale,omitempty"`
}

// HasError reports whether the field currently shows an error.
func (f FieldState) HasError() bool { return f.Error != "" }

// FormState is an immutable snapshot of a form. Controllers hand out copies,
// so mutating a snapshot never affects the controller.
type FormState struct {
	Form        string                `json:"form"`
	Order       []string              `json:"order"`
	Fields      map[string]FieldState `json:"fields"`
	IsValid     bool                  `json:"is_valid"`
	SubmitCount int                   `json:"submit_count"`
}

// Field returns the state of the named field.
func (s FormState) Field(name string) (FieldState, bool) {
	f, ok := s.Fields[name]
	return f, ok
}

// Errors returns the fields that currently show an error.
func (s FormState) Errors() map[string]string {
	out := make(map[string]string)
	for name, f := range s.Fields {
		if f.Error != "" {
			out[name] = f.Error
		}
	}
	return out
}

// Values returns the current value of every field.
func (s FormState) Values() map[string]string {
	out := make(map[string]string, len(s.Fields))
	for name, f := range s.Fields {
		out[name] = f.Value
	}
	return out
}

// Clone returns an independent copy of the snapshot.
func (s FormState) Clone() FormState {
	s.Order = slices.Clone(s.Order)
	s.Fields = maps.Clone(s.Fields)
	return s
}

// FieldView is what a rendering layer needs to draw one input.
type FieldView struct {
	Name        string
	Type        schema.FieldType
	Label       string
	Placeholder string
	Value       string
	Error       string
	Touched     bool
}
