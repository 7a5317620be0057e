package validator

import (
	"errors"
	"slices"
	"strings"
)

// ValidationError is one failed rule. Message is the default text;
// TranslationKey and TranslationValues let a catalog replace it.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors is an ordered list of failures and an error value.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Field + ": " + e.Message)
	}
	return b.String()
}

func (ve *ValidationErrors) Add(err ValidationError) { *ve = append(*ve, err) }

func (ve ValidationErrors) IsEmpty() bool { return len(ve) == 0 }

func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

// Get returns field's messages in the order they were added.
func (ve ValidationErrors) Get(field string) []string {
	var out []string
	for _, e := range ve {
		if e.Field == field {
			out = append(out, e.Message)
		}
	}
	return out
}

// First returns field's first message, or "".
func (ve ValidationErrors) First(field string) string {
	if i := slices.IndexFunc(ve, func(e ValidationError) bool { return e.Field == field }); i >= 0 {
		return ve[i].Message
	}
	return ""
}

// Fields lists failing fields once each, in first-failure order.
func (ve ValidationErrors) Fields() []string {
	var out []string
	for _, e := range ve {
		if !slices.Contains(out, e.Field) {
			out = append(out, e.Field)
		}
	}
	return out
}

// Map returns field -> first message.
func (ve ValidationErrors) Map() map[string]string {
	out := make(map[string]string, len(ve))
	for _, e := range ve {
		if _, seen := out[e.Field]; !seen {
			out[e.Field] = e.Message
		}
	}
	return out
}

// ExtractValidationErrors unwraps ValidationErrors from err, or returns nil.
func ExtractValidationErrors(err error) ValidationErrors {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

func IsValidationError(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}
