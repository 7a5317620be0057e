package validator

import (
	"fmt"
	"unicode/utf8"
)

// Required fails only for "". Whitespace counts as content.
func Required(field, value string) Rule {
	return newRule(field, KeyRequired, "field is required",
		func() bool { return value != "" })
}

// MinLen counts runes and never trims.
func MinLen(field, value string, min int) Rule {
	return newRule(field, KeyMinLength, fmt.Sprintf("must be at least %d characters long", min),
		func() bool { return utf8.RuneCountInString(value) >= min },
		"min", min)
}

func MaxLen(field, value string, max int) Rule {
	return newRule(field, KeyMaxLength, fmt.Sprintf("must be at most %d characters long", max),
		func() bool { return utf8.RuneCountInString(value) <= max },
		"max", max)
}
