package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/loginform/pkg/logger"
)

// Translator resolves dot-separated keys against per-language catalogs.
// It is safe for concurrent use.
type Translator struct {
	mu            sync.RWMutex
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	logMissing    bool
	logger        *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when the requested one has no
// entry for a key.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls whether a missing key translates to itself
// (the default) or to "".
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) { t.fallbackToKey = fallback }
}

func WithLogger(l *slog.Logger) Option {
	return func(t *Translator) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMissingTranslationsLogging logs a warning for every missing key.
func WithMissingTranslationsLogging(enabled bool) Option {
	return func(t *Translator) { t.logMissing = enabled }
}

// NewTranslator loads catalogs from adapter.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, opts ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, catalog := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if catalog == nil {
			return nil, fmt.Errorf("%w: %s", ErrNilCatalog, lang)
		}
	}

	t.translations = translations
	t.logger.DebugContext(ctx, "translations loaded",
		logger.Component("i18n"),
		slog.Any("languages", t.languages()),
	)
	return t, nil
}

// Languages returns the loaded language codes, sorted.
func (t *Translator) Languages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.languages()
}

func (t *Translator) languages() []string {
	langs := make([]string, 0, len(t.translations))
	for lang := range t.translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// DefaultLanguage returns the fallback language.
func (t *Translator) DefaultLanguage() string { return t.defaultLang }

// Has reports whether lang has a string entry for key.
func (t *Translator) Has(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.lookup(lang, key)
	return ok
}

// T translates key for lang. Args are name/value pairs substituted into
// "%{name}" placeholders; a trailing odd arg is ignored.
//
//	// "validation.min_length": "No mínimo %{min} caracteres"
//	tr.T("pt-BR", "validation.min_length", "min", "6") // "No mínimo 6 caracteres"
//
// Missing keys fall back to the default language, then to the key itself.
func (t *Translator) T(lang, key string, args ...string) string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return t.translate(lang, key, params)
}

// Tc is T with the language taken from ctx.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocale(ctx), key, args...)
}

// Tm is T with parameters as a map. Values are formatted with %v.
func (t *Translator) Tm(lang, key string, values map[string]any) string {
	params := make(map[string]string, len(values))
	for k, v := range values {
		params[k] = fmt.Sprint(v)
	}
	return t.translate(lang, key, params)
}

// Func binds the translator to one language. The result has the signature
// the schema localizer expects.
func (t *Translator) Func(lang string) func(key string, values map[string]any) string {
	return func(key string, values map[string]any) string {
		return t.Tm(lang, key, values)
	}
}

func (t *Translator) translate(lang, key string, params map[string]string) string {
	t.mu.RLock()
	tmpl, ok := t.lookup(lang, key)
	if !ok && lang != t.defaultLang {
		tmpl, ok = t.lookup(t.defaultLang, key)
	}
	t.mu.RUnlock()

	if !ok {
		if t.logMissing {
			t.logger.Warn("translation not found", logger.Locale(lang), slog.String("key", key))
		}
		if !t.fallbackToKey {
			return ""
		}
		tmpl = key
	}
	return interpolate(tmpl, params)
}

// lookup walks nested maps along the dot-separated key. Only string leaves match.
func (t *Translator) lookup(lang, key string) (string, bool) {
	current, ok := t.translations[lang]
	if !ok {
		return "", false
	}

	parts := strings.Split(key, ".")
	for i, part := range parts {
		v, ok := current[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := v.(string)
			return s, ok
		}
		if current, ok = asMap(v); !ok {
			return "", false
		}
	}
	return "", false
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			if ks, ok := k.(string); ok {
				out[ks] = v
			}
		}
		return out, true
	default:
		return nil, false
	}
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

// interpolate replaces %{name} with params[name]. Unknown names are kept.
func interpolate(tmpl string, params map[string]string) string {
	if len(params) == 0 {
		return tmpl
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}
