package validator

// Translation keys carried by the built-in rules.
const (
	KeyRequired  = "validation.required"
	KeyEmail     = "validation.email"
	KeyMinLength = "validation.min_length"
	KeyMaxLength = "validation.max_length"
	KeyPattern   = "validation.regex_pattern"
)

// Rule is one check over a captured value. Check is pure: evaluating it again
// gives the same answer.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// newRule builds a Rule whose error carries field plus the extra key/value
// pairs in kv as translation values.
func newRule(field, key, message string, check func() bool, kv ...any) Rule {
	values := map[string]any{"field": field}
	for i := 0; i+1 < len(kv); i += 2 {
		if name, ok := kv[i].(string); ok {
			values[name] = kv[i+1]
		}
	}
	return Rule{
		Check: check,
		Error: ValidationError{
			Field:             field,
			Message:           message,
			TranslationKey:    key,
			TranslationValues: values,
		},
	}
}

// Apply runs every rule and returns the failures as ValidationErrors,
// or nil when all pass.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, r := range rules {
		if !r.Check() {
			errs.Add(r.Error)
		}
	}
	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// FirstFailure runs rules in order and returns the first failure, or nil.
// Rules after it are not evaluated.
func FirstFailure(rules ...Rule) *ValidationError {
	for _, r := range rules {
		if !r.Check() {
			verr := r.Error
			return &verr
		}
	}
	return nil
}
