package web

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/loginform/pkg/form"
)

var ErrBadSignals = errors.New("web: malformed datastar signals")

// inputSignals is what the page posts: the field that fired plus every
// field value, keyed by field name.
type inputSignals struct {
	Field  string
	Values map[string]string
}

func readInputSignals(r *http.Request, fields []string) (inputSignals, error) {
	var raw map[string]any
	if err := datastar.ReadSignals(r, &raw); err != nil {
		return inputSignals{}, errors.Join(ErrBadSignals, err)
	}

	in := inputSignals{Values: make(map[string]string, len(fields))}
	if v, ok := raw["field"].(string); ok {
		in.Field = v
	}
	for _, name := range fields {
		if v, ok := raw[name].(string); ok {
			in.Values[name] = v
		}
	}
	return in, nil
}

// stateSignals is the derived state patched back after every event. Every
// field is present in Errors, so a cleared error reaches the client as "".
type stateSignals struct {
	Errors  map[string]string `json:"errors"`
	Touched map[string]bool   `json:"touched"`
	IsValid bool              `json:"isValid"`
}

func newStateSignals(s form.FormState) stateSignals {
	out := stateSignals{
		Errors:  make(map[string]string, len(s.Order)),
		Touched: make(map[string]bool, len(s.Order)),
		IsValid: s.IsValid,
	}
	for _, name := range s.Order {
		f := s.Fields[name]
		out.Errors[name] = f.Error
		out.Touched[name] = f.Touched
	}
	return out
}

func patchState(sse *datastar.ServerSentEventGenerator, s form.FormState) error {
	data, err := json.Marshal(newStateSignals(s))
	if err != nil {
		return err
	}
	return sse.PatchSignals(data)
}
