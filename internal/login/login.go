// Package login defines the login form: its schema, message catalogs and
// the UI texts shared by the terminal and web layers.
package login

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/loginform/pkg/form"
	"github.com/dmitrymomot/loginform/pkg/i18n"
	"github.com/dmitrymomot/loginform/pkg/schema"
)

const (
	FormName      = "login"
	FieldEmail    = "email"
	FieldPassword = "password"

	// MinPasswordLength is the shortest accepted password, in characters.
	MinPasswordLength = 6

	DefaultLocale = "pt-BR"
)

// Languages lists the bundled catalogs, default first.
var Languages = []string{DefaultLocale, "en"}

var ErrMissingField = errors.New("login: schema lacks a required field")

//go:embed locales/*.yaml
var locales embed.FS

// Schema is the login form with its pt-BR messages set explicitly.
func Schema() *schema.FormSchema {
	return schema.MustNew(FormName,
		schema.Email(FieldEmail).
			Placeholder("Email").
			Email("E-mail inválido").
			Required("Campo obrigatório").
			Build(),
		schema.Password(FieldPassword).
			Placeholder("Senha").
			MinLength(MinPasswordLength, "No mínimo 6 caracteres").
			Required("Campo obrigatório").
			Build(),
	)
}

// LocalizedSchema builds the login form with labels, placeholders and
// messages taken from tr for lang.
func LocalizedSchema(tr *i18n.Translator, lang string) *schema.FormSchema {
	base := schema.MustNew(FormName,
		schema.Email(FieldEmail).
			Label(tr.T(lang, "login.email_label")).
			Placeholder(tr.T(lang, "login.email_placeholder")).
			Email("").
			Required("").
			Build(),
		schema.Password(FieldPassword).
			Label(tr.T(lang, "login.password_label")).
			Placeholder(tr.T(lang, "login.password_placeholder")).
			MinLength(MinPasswordLength, "").
			Required("").
			Build(),
	)
	return schema.Localize(base, tr.Func(lang))
}

// LoadSchema reads a schema declaration file and checks that it still
// declares the email and password fields. Messages left empty in the file
// are filled from tr when tr is not nil.
func LoadSchema(path string, tr *i18n.Translator, lang string) (*schema.FormSchema, error) {
	s, err := schema.LoadFile(path)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{FieldEmail, FieldPassword} {
		if _, ok := s.Field(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrMissingField, name)
		}
	}
	if tr != nil {
		s = schema.Localize(s, tr.Func(lang))
	}
	return s, nil
}

// Defaults is the initial record: both fields empty.
func Defaults() map[string]string {
	return map[string]string{FieldEmail: "", FieldPassword: ""}
}

// NewForm starts a controller for s with empty defaults.
func NewForm(s *schema.FormSchema, opts ...form.Option) (*form.Controller, error) {
	return form.New(s, Defaults(), opts...)
}

// NewTranslator loads the bundled catalogs.
func NewTranslator(ctx context.Context, log *slog.Logger) (*i18n.Translator, error) {
	return i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.YAMLParser{}, locales, "locales"),
		i18n.WithDefaultLanguage(DefaultLocale),
		i18n.WithLogger(log),
		i18n.WithMissingTranslationsLogging(true),
	)
}

// Texts are the non-field strings of the login screen.
type Texts struct {
	Title    string
	Submit   string
	Accepted string
	Rejected string
	Help     string
}

// UI returns the screen texts for lang.
func UI(tr *i18n.Translator, lang string) Texts {
	return Texts{
		Title:    tr.T(lang, "login.title"),
		Submit:   tr.T(lang, "login.submit"),
		Accepted: tr.T(lang, "login.accepted"),
		Rejected: tr.T(lang, "login.rejected"),
		Help:     tr.T(lang, "login.help"),
	}
}
