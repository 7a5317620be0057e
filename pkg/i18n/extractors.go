package i18n

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// LangExtractor derives a language from a request. "" means undecided.
type LangExtractor func(r *http.Request) string

// ExtractorConfig holds the sources checked by DefaultLangExtractor.
type ExtractorConfig struct {
	CookieName     string
	QueryParamName string
	SupportedLangs []string
}

type ExtractorOption func(*ExtractorConfig)

func WithCookieName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.CookieName = name
		}
	}
}

func WithQueryParamName(name string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if name != "" {
			c.QueryParamName = name
		}
	}
}

func WithSupportedLanguages(langs ...string) ExtractorOption {
	return func(c *ExtractorConfig) {
		if len(langs) > 0 {
			c.SupportedLangs = langs
		}
	}
}

// DefaultLangExtractor checks, in order, the "lang" query parameter, the
// "lang" cookie and Accept-Language. Explicit values are matched against the
// supported languages; unsupported ones are skipped.
func DefaultLangExtractor(opts ...ExtractorOption) LangExtractor {
	cfg := &ExtractorConfig{CookieName: "lang", QueryParamName: "lang"}
	for _, opt := range opts {
		opt(cfg)
	}

	explicit := func(v string) string {
		v = strings.TrimSpace(v)
		if v == "" || len(v) > 35 {
			return ""
		}
		tag, err := language.Parse(v)
		if err != nil {
			return ""
		}
		if len(cfg.SupportedLangs) == 0 {
			return tag.String()
		}
		return Match(cfg.SupportedLangs, "", tag)
	}

	return func(r *http.Request) string {
		if cfg.QueryParamName != "" {
			if lang := explicit(r.URL.Query().Get(cfg.QueryParamName)); lang != "" {
				return lang
			}
		}
		if cfg.CookieName != "" {
			if c, err := r.Cookie(cfg.CookieName); err == nil {
				if lang := explicit(c.Value); lang != "" {
					return lang
				}
			}
		}
		header := r.Header.Get("Accept-Language")
		if len(cfg.SupportedLangs) > 0 {
			return ParseAcceptLanguage(header, cfg.SupportedLangs, "")
		}
		if tags, _, err := language.ParseAcceptLanguage(header); err == nil && len(tags) > 0 {
			return tags[0].String()
		}
		return ""
	}
}
