package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/dmitrymomot/loginform/internal/login"
	"github.com/dmitrymomot/loginform/pkg/config"
	"github.com/dmitrymomot/loginform/pkg/i18n"
	"github.com/dmitrymomot/loginform/pkg/schema"
)

// app holds what every command needs once flags and env are resolved.
type app struct {
	cfg    appConfig
	log    *slog.Logger
	tr     *i18n.Translator
	locale string
}

type appFlags struct {
	locale string
	schema string
}

func newApp(ctx context.Context, flags appFlags, logOut io.Writer) (*app, error) {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	if flags.locale != "" {
		cfg.Locale = flags.locale
	}
	if flags.schema != "" {
		cfg.SchemaFile = flags.schema
	}

	log, err := newLogger(cfg, logOut)
	if err != nil {
		return nil, err
	}
	tr, err := login.NewTranslator(ctx, log)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, log: log, tr: tr, locale: resolveLocale(cfg.Locale)}, nil
}

// schema returns the login form for lang, read from the configured file
// when one is set.
func (a *app) schema(lang string) (*schema.FormSchema, error) {
	if a.cfg.SchemaFile != "" {
		return login.LoadSchema(a.cfg.SchemaFile, a.tr, lang)
	}
	return login.LocalizedSchema(a.tr, lang), nil
}

func (a *app) texts(lang string) login.Texts { return login.UI(a.tr, lang) }
