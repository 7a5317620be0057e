package schema

import (
	"slices"

	"github.com/dmitrymomot/loginform/pkg/validator"
)

// MessageFunc resolves a translation key with its values to a message.
// Returning "" or the key itself means "no translation".
type MessageFunc func(key string, values map[string]any) string

// Localize returns a copy of s in which every empty message is filled by fn.
// Explicit messages are never overwritten.
func Localize(s *FormSchema, fn MessageFunc) *FormSchema {
	out := &FormSchema{
		name:   s.name,
		fields: make([]FieldSchema, len(s.fields)),
		index:  make(map[string]int, len(s.index)),
	}

	for i, f := range s.fields {
		f.Constraints = slices.Clone(f.Constraints)
		if fn != nil {
			if f.Required && f.RequiredMessage == "" {
				f.RequiredMessage = resolve(fn, validator.Required(f.Name, "").Error)
			}
			for j, c := range f.Constraints {
				if c.Message == "" {
					f.Constraints[j].Message = resolve(fn, constraintRule(f.Name, "", c).Error)
				}
			}
		}
		out.fields[i] = f
		out.index[f.Name] = i
	}

	return out
}

func resolve(fn MessageFunc, verr validator.ValidationError) string {
	msg := fn(verr.TranslationKey, verr.TranslationValues)
	if msg == verr.TranslationKey {
		return ""
	}
	return msg
}
