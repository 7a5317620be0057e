// Package validator provides small, pure validation rules for form input.
//
// A Rule pairs a boolean Check function with translation-friendly error
// metadata. Rules never mutate their input and hold no global state, so the
// same rule evaluated twice yields the same result.
//
// Every built-in rule reports one of the Key* translation keys, with the
// field name and the rule's parameters ("min", "max", "pattern") as values.
//
// # Usage
//
// Apply collects every failure, FirstFailure stops at the first one:
//
//	err := validator.Apply(
//	    validator.Required("email", email),
//	    validator.ValidEmail("email", email),
//	)
//
//	if verr := validator.FirstFailure(
//	    validator.Required("password", password),
//	    validator.MinLen("password", password, 6),
//	); verr != nil {
//	    // verr.Message, verr.TranslationKey
//	}
//
// # Semantics
//
// Required rejects only the empty string. MinLen and MaxLen count runes and do
// not trim. ValidEmail requires a bare address whose domain contains a dot.
package validator
