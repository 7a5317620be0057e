package i18n

import (
	"golang.org/x/text/language"
)

// DefaultLanguage is used when nothing else is configured.
const DefaultLanguage = "en"

// maxAcceptLanguageLength bounds the header handed to the parser.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage picks the supported language that best matches an
// Accept-Language header, honoring q-values. Regional variants match their
// base language in either direction ("pt" matches "pt-BR"). The supported
// entry is returned as given. An empty header, no supported languages or no
// acceptable match yields defaultLang.
func ParseAcceptLanguage(header string, supported []string, defaultLang string) string {
	if header == "" || len(supported) == 0 {
		return defaultLang
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	desired, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(desired) == 0 {
		return defaultLang
	}
	return Match(supported, defaultLang, desired...)
}

// Match returns the supported language closest to the desired tags, or
// defaultLang when none is acceptable.
func Match(supported []string, defaultLang string, desired ...language.Tag) string {
	tags := make([]language.Tag, 0, len(supported))
	index := make([]int, 0, len(supported))
	for i, s := range supported {
		tag, err := language.Parse(s)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		index = append(index, i)
	}
	if len(tags) == 0 || len(desired) == 0 {
		return defaultLang
	}

	_, idx, conf := language.NewMatcher(tags).Match(desired...)
	if conf == language.No {
		return defaultLang
	}
	return supported[index[idx]]
}

// Normalize returns the canonical BCP 47 form of lang ("pt-br" -> "pt-BR"),
// or "" when lang does not parse.
func Normalize(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return ""
	}
	return tag.String()
}
