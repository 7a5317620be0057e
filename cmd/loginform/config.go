package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/dmitrymomot/loginform/internal/login"
	"github.com/dmitrymomot/loginform/pkg/httpserver"
	"github.com/dmitrymomot/loginform/pkg/i18n"
	"github.com/dmitrymomot/loginform/pkg/logger"
	"github.com/dmitrymomot/loginform/pkg/redis"
)

const serviceName = "loginform"

type appConfig struct {
	Env        string        `env:"LOGINFORM_ENV" envDefault:"development"`
	LogLevel   string        `env:"LOGINFORM_LOG_LEVEL"`
	LogFormat  string        `env:"LOGINFORM_LOG_FORMAT"`
	Locale     string        `env:"LOGINFORM_LOCALE" envDefault:"pt-BR"`
	SchemaFile string        `env:"LOGINFORM_SCHEMA_FILE"`
	DraftTTL   time.Duration `env:"DRAFT_TTL" envDefault:"30m"`

	HTTP  httpserver.Config
	Redis redis.Config
}

// newLogger applies the environment preset first so explicit level and
// format settings override it.
func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(w),
		logger.WithContextExtractors(logger.ContextAttrs),
	}
	if cfg.LogLevel != "" {
		level, err := logger.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.LogFormat != "" {
		format, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(format))
	}
	return logger.New(opts...), nil
}

// resolveLocale maps any language tag to a bundled catalog.
func resolveLocale(lang string) string {
	return i18n.ParseAcceptLanguage(lang, login.Languages, login.DefaultLocale)
}

// languagesFor lists the bundled languages with locale first.
func languagesFor(locale string) []string {
	out := []string{locale}
	for _, l := range login.Languages {
		if l != locale {
			out = append(out, l)
		}
	}
	return out
}
