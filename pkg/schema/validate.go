package schema

import (
	"github.com/dmitrymomot/loginform/pkg/validator"
)

// Rules expands a field declaration into validator rules for value, in evaluation order.
// A field that is not required and holds "" yields no rules.
func Rules(f FieldSchema, value string) []validator.Rule {
	if !f.Required && value == "" {
		return nil
	}

	rules := make([]validator.Rule, 0, len(f.Constraints)+1)
	if f.Required {
		rules = append(rules, withMessage(validator.Required(f.Name, value), f.RequiredMessage))
	}
	for _, c := range f.Constraints {
		rules = append(rules, withMessage(constraintRule(f.Name, value, c), c.Message))
	}
	return rules
}

func constraintRule(field, value string, c Constraint) validator.Rule {
	switch c.Kind {
	case KindEmail:
		return validator.ValidEmail(field, value)
	case KindMinLength:
		return validator.MinLen(field, value, c.Min)
	case KindMaxLength:
		return validator.MaxLen(field, value, c.Max)
	case KindPattern:
		desc := c.Description
		if desc == "" {
			desc = "required"
		}
		return validator.Matches(field, value, c.Pattern, desc)
	}

	// New rejects unknown kinds; a zero-value FieldSchema used directly still fails closed.
	return validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{
			Field:          field,
			Message:        "invalid value",
			TranslationKey: "validation.invalid",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func withMessage(r validator.Rule, msg string) validator.Rule {
	if msg != "" {
		r.Error.Message = msg
	}
	return r
}

// ValidateField applies the field's rules to value and returns the first failure, or nil.
func ValidateField(f FieldSchema, value string) *validator.ValidationError {
	return validator.FirstFailure(Rules(f, value)...)
}

// ValidateRecord validates every declared field. Missing keys are validated as "".
// Only failing fields are returned, one error each, in declaration order.
func ValidateRecord(s *FormSchema, values map[string]string) validator.ValidationErrors {
	var errs validator.ValidationErrors
	for _, f := range s.fields {
		if verr := ValidateField(f, values[f.Name]); verr != nil {
			errs.Add(*verr)
		}
	}
	return errs
}

// Validate is ValidateRecord returning an error value.
func (s *FormSchema) Validate(values map[string]string) error {
	if errs := ValidateRecord(s, values); !errs.IsEmpty() {
		return errs
	}
	return nil
}

// ValidateField validates a single named field. Unknown names report ok=false.
func (s *FormSchema) ValidateField(name, value string) (verr *validator.ValidationError, ok bool) {
	f, ok := s.Field(name)
	if !ok {
		return nil, false
	}
	return ValidateField(f, value), true
}
