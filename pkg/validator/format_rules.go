package validator

import (
	"net/mail"
	"regexp"
	"strings"
)

// ValidEmail accepts a bare address, without display name or surrounding
// space, whose domain has two or more non-empty labels.
func ValidEmail(field, value string) Rule {
	return newRule(field, KeyEmail, "must be a valid email address",
		func() bool { return isEmail(value) })
}

func isEmail(value string) bool {
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Name != "" || addr.Address != value {
		return false
	}

	_, domain, _ := strings.Cut(value, "@")
	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" {
			return false
		}
	}
	return true
}

// Matches checks value against pattern. A nil pattern never matches.
// description names the pattern in the default message.
func Matches(field, value string, pattern *regexp.Regexp, description string) Rule {
	var expr string
	if pattern != nil {
		expr = pattern.String()
	}
	return newRule(field, KeyPattern, "must match "+description+" pattern",
		func() bool { return pattern != nil && pattern.MatchString(value) },
		"pattern", expr, "description", description)
}
