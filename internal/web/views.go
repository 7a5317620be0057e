package web

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/goccy/go-json"

	"github.com/dmitrymomot/loginform/internal/login"
	"github.com/dmitrymomot/loginform/pkg/form"
	"github.com/dmitrymomot/loginform/pkg/schema"
)

// DatastarScript is the client bundle matching datastar-go v1.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0-RC.6/bundles/datastar.js"

const pageStyle = `body{font-family:system-ui,sans-serif;display:flex;justify-content:center;padding-top:10vh}
main{width:20rem}input{display:block;width:100%;padding:.5rem;margin-top:1rem;box-sizing:border-box}
.error{color:#b00020;font-size:.85rem;min-height:1rem;margin:.25rem 0 0}
button{margin-top:1.5rem;width:100%;padding:.6rem}button:disabled{opacity:.5}
#result.ok{color:#1b5e20}#result.fail{color:#b00020}`

// pageData is everything the login page renders.
type pageData struct {
	Lang    string
	Texts   login.Texts
	Fields  []form.FieldView
	Signals stateSignals
}

// loginPage renders the full document. Inputs are bound to Datastar signals
// named after the fields; errors and the submit button follow the
// errors and isValid signals patched by the handlers.
func loginPage(d pageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		signals, err := json.Marshal(initialSignals(d.Fields, d.Signals))
		if err != nil {
			return err
		}

		var b strings.Builder
		fmt.Fprintf(&b, `<!doctype html><html lang="%s"><head><meta charset="utf-8">`, templ.EscapeString(d.Lang))
		fmt.Fprintf(&b, `<title>%s</title>`, templ.EscapeString(d.Texts.Title))
		fmt.Fprintf(&b, `<script type="module" src="%s"></script><style>%s</style></head><body>`, DatastarScript, pageStyle)
		fmt.Fprintf(&b, `<main id="login" data-signals="%s">`, templ.EscapeString(string(signals)))
		fmt.Fprintf(&b, `<h1>%s</h1>`, templ.EscapeString(d.Texts.Title))
		b.WriteString(`<form data-on:submit__prevent="@post('/login/submit')" novalidate>`)
		for _, f := range d.Fields {
			writeField(&b, f)
		}
		fmt.Fprintf(&b, `<button type="submit" data-attr:disabled="!$isValid"%s>%s</button></form>`,
			disabledAttr(!d.Signals.IsValid), templ.EscapeString(d.Texts.Submit))
		b.WriteString(`<p id="result"></p></main></body></html>`)

		_, err = io.WriteString(w, b.String())
		return err
	})
}

func writeField(b *strings.Builder, f form.FieldView) {
	name := templ.EscapeString(f.Name)
	fmt.Fprintf(b, `<div class="field"><label for="%s">%s</label>`, name, templ.EscapeString(f.Label))
	fmt.Fprintf(b, `<input id="%s" name="%s" type="%s" placeholder="%s" autocomplete="%s" data-bind:%s`,
		name, name, inputType(f.Type), templ.EscapeString(f.Placeholder), autocomplete(f.Type), name)
	fmt.Fprintf(b, ` data-on:input__debounce.150ms="$field='%s'; @post('/login/input')"`, name)
	fmt.Fprintf(b, ` data-on:blur="$field='%s'; @post('/login/blur')">`, name)
	fmt.Fprintf(b, `<p class="error" data-text="$errors.%s">%s</p></div>`, name, templ.EscapeString(f.Error))
}

// resultView is patched into #result after a submit.
func resultView(ok bool, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		class := "fail"
		if ok {
			class = "ok"
		}
		_, err := fmt.Fprintf(w, `<p id="result" class="%s" role="status">%s</p>`, class, templ.EscapeString(message))
		return err
	})
}

// initialSignals seeds the page: one signal per field value plus the
// derived state.
func initialSignals(fields []form.FieldView, s stateSignals) map[string]any {
	out := map[string]any{
		"field":   "",
		"errors":  s.Errors,
		"touched": s.Touched,
		"isValid": s.IsValid,
	}
	for _, f := range fields {
		out[f.Name] = f.Value
	}
	return out
}

func inputType(t schema.FieldType) string {
	switch t {
	case schema.TypeEmail:
		return "email"
	case schema.TypePassword:
		return "password"
	default:
		return "text"
	}
}

func autocomplete(t schema.FieldType) string {
	switch t {
	case schema.TypeEmail:
		return "username"
	case schema.TypePassword:
		return "current-password"
	default:
		return "off"
	}
}

func disabledAttr(disabled bool) string {
	if disabled {
		return " disabled"
	}
	return ""
}
