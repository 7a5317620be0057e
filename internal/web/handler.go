package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/loginform/internal/login"
	"github.com/dmitrymomot/loginform/pkg/form"
	"github.com/dmitrymomot/loginform/pkg/i18n"
	"github.com/dmitrymomot/loginform/pkg/logger"
	"github.com/dmitrymomot/loginform/pkg/schema"
)

// DraftCookie carries the draft ID between the page and its SSE requests.
const DraftCookie = "loginform_draft"

// SchemaFunc returns the form schema for a language.
type SchemaFunc func(lang string) *schema.FormSchema

// TextsFunc returns the screen texts for a language.
type TextsFunc func(lang string) login.Texts

// Handler serves the login page and its Datastar endpoints. Form state lives
// in a Store between requests; each request rebuilds a controller from the
// stored snapshot while holding the draft's lock.
type Handler struct {
	schemas   SchemaFunc
	texts     TextsFunc
	store     Store
	locks     *draftLocks
	log       *slog.Logger
	formOpts  []form.Option
	cookieTTL time.Duration
	newID     func() string
}

// Option configures a Handler.
type Option func(*Handler)

func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithFormOptions passes options to every controller the handler creates.
func WithFormOptions(opts ...form.Option) Option {
	return func(h *Handler) { h.formOpts = append(h.formOpts, opts...) }
}

// WithCookieTTL sets the draft cookie lifetime. It should match the store TTL.
func WithCookieTTL(d time.Duration) Option {
	return func(h *Handler) { h.cookieTTL = d }
}

func NewHandler(schemas SchemaFunc, texts TextsFunc, store Store, opts ...Option) *Handler {
	h := &Handler{
		schemas:   schemas,
		texts:     texts,
		store:     store,
		locks:     newDraftLocks(),
		log:       logger.Discard(),
		cookieTTL: 30 * time.Minute,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Page renders the form and starts a fresh draft.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	lang := i18n.GetLocale(ctx)

	c, err := form.New(h.schemas(lang), login.Defaults(), h.controllerOpts()...)
	if err != nil {
		return err
	}
	d := Draft{ID: h.newID(), Locale: lang, State: c.State()}
	if err := h.store.Save(ctx, d); err != nil {
		return err
	}
	h.setCookie(w, d.ID)
	h.log.DebugContext(ctx, "draft created", logger.DraftID(d.ID), logger.Locale(lang))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return loginPage(pageData{
		Lang:    lang,
		Texts:   h.texts(lang),
		Fields:  c.Views(),
		Signals: newStateSignals(c.State()),
	}).Render(ctx, w)
}

// Input applies a value change of the field named by the "field" signal.
func (h *Handler) Input(w http.ResponseWriter, r *http.Request) error {
	return h.event(w, r, func(ctx context.Context, c *form.Controller, in inputSignals) error {
		_, err := c.SetValue(ctx, in.Field, in.Values[in.Field])
		return err
	})
}

// Blur syncs the field's value and marks it touched.
func (h *Handler) Blur(w http.ResponseWriter, r *http.Request) error {
	return h.event(w, r, func(ctx context.Context, c *form.Controller, in inputSignals) error {
		if _, err := c.SetValue(ctx, in.Field, in.Values[in.Field]); err != nil {
			return err
		}
		_, err := c.Blur(ctx, in.Field)
		return err
	})
}

// Submit syncs every value, validates the whole record and patches #result.
// Nothing is sent anywhere: a valid record is only acknowledged.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) error {
	var accepted bool
	return h.eventThen(w, r,
		func(ctx context.Context, c *form.Controller, in inputSignals) error {
			for name, v := range in.Values {
				if _, err := c.SetValue(ctx, name, v); err != nil {
					return err
				}
			}
			_, err := c.Submit(ctx)
			accepted = err == nil
			if accepted || isValidationFailure(err) {
				return nil
			}
			return err
		},
		func(sse *datastar.ServerSentEventGenerator, d Draft) error {
			texts := h.texts(d.Locale)
			msg := texts.Rejected
			if accepted {
				msg = texts.Accepted
			}
			return sse.PatchElementTempl(resultView(accepted, msg))
		},
	)
}

type eventFunc func(ctx context.Context, c *form.Controller, in inputSignals) error

func (h *Handler) event(w http.ResponseWriter, r *http.Request, apply eventFunc) error {
	return h.eventThen(w, r, apply, nil)
}

// eventThen loads the draft, applies one event, saves the draft and streams
// the derived state. A missing or expired draft is replaced by a fresh one.
func (h *Handler) eventThen(
	w http.ResponseWriter,
	r *http.Request,
	apply eventFunc,
	after func(*datastar.ServerSentEventGenerator, Draft) error,
) error {
	ctx := r.Context()
	id := h.draftID(r)

	unlock := h.locks.lock(id)
	defer unlock()

	d, c, err := h.restore(ctx, id, i18n.GetLocale(ctx))
	if err != nil {
		return err
	}
	ctx = logger.WithAttrs(ctx, logger.DraftID(d.ID))

	in, err := readInputSignals(r, c.Schema().Names())
	if err != nil {
		return err
	}
	if err := apply(ctx, c, in); err != nil {
		return err
	}

	d.State = c.State()
	d.UpdatedAt = time.Now()
	if err := h.store.Save(ctx, d); err != nil {
		return err
	}
	h.setCookie(w, d.ID)

	sse := datastar.NewSSE(w, r)
	if err := patchState(sse, d.State); err != nil {
		return err
	}
	if after != nil {
		return after(sse, d)
	}
	return nil
}

func (h *Handler) restore(ctx context.Context, id, lang string) (Draft, *form.Controller, error) {
	d, err := h.store.Load(ctx, id)
	switch {
	case errors.Is(err, ErrDraftNotFound):
		d = Draft{ID: id, Locale: lang}
	case err != nil:
		return Draft{}, nil, err
	}

	c, err := form.New(h.schemas(d.Locale), login.Defaults(), h.controllerOpts()...)
	if err != nil {
		return Draft{}, nil, err
	}
	if d.State.Form != "" {
		if err := c.Restore(d.State); err != nil {
			h.log.WarnContext(ctx, "discarding incompatible draft", logger.DraftID(id), logger.Error(err))
		}
	}
	return d, c, nil
}

func (h *Handler) controllerOpts() []form.Option {
	return append([]form.Option{form.WithLogger(h.log)}, h.formOpts...)
}

// draftID returns the cookie's draft ID, or a new one when it is missing
// or not a UUID.
func (h *Handler) draftID(r *http.Request) string {
	if c, err := r.Cookie(DraftCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}
	return h.newID()
}

func (h *Handler) setCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     DraftCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(h.cookieTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
