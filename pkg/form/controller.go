package form

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/loginform/pkg/logger"
	"github.com/dmitrymomot/loginform/pkg/schema"
	"github.com/dmitrymomot/loginform/pkg/validator"
)

type fieldEntry struct {
	def       schema.FieldSchema
	initial   string
	value     string
	err       string
	defaultOK bool
	// stale is set when a touched field changed without being validated again.
	stale   bool
	machine fieldMachine
}

func (e *fieldEntry) state() FieldState {
	return FieldState{
		Value:   e.value,
		Touched: e.machine.current.Touched(),
		Error:   e.err,
		Status:  e.machine.current,
		Stale:   e.stale,
	}
}

// Controller owns the state of one form instance. It is not safe for
// concurrent use: callers serialize events, as a UI event loop does.
type Controller struct {
	schema      *schema.FormSchema
	fields      map[string]*fieldEntry
	order       []string
	submitCount int
	valid       bool
	opts        options
	subs        listeners
}

// New initializes form state. Each value comes from defaults, then from the
// field's declared Default, then "". Every field starts untouched without error.
func New(s *schema.FormSchema, defaults map[string]string, opts ...Option) (*Controller, error) {
	if s == nil {
		return nil, ErrNilSchema
	}

	for name := range defaults {
		if _, ok := s.Field(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}

	c := &Controller{
		schema: s,
		fields: make(map[string]*fieldEntry, s.Len()),
		order:  s.Names(),
		opts:   defaultOptions(),
	}
	for _, opt := range opts {
		opt(&c.opts)
	}

	for _, def := range s.Fields() {
		initial := def.Default
		if v, ok := defaults[def.Name]; ok {
			initial = v
		}
		c.fields[def.Name] = &fieldEntry{
			def:       def,
			initial:   initial,
			value:     initial,
			defaultOK: initial != "" && schema.ValidateField(def, initial) == nil,
			machine:   newFieldMachine(),
		}
	}
	c.valid = c.computeValid()

	return c, nil
}

// Schema returns the schema the controller validates against.
func (c *Controller) Schema() *schema.FormSchema { return c.schema }

// SetValue updates a field's value. A touched field is validated again when
// the re-validate mode is RevalidateOnChange; an untouched field never gains or
// loses an error here.
func (c *Controller) SetValue(ctx context.Context, field, value string) (FormState, error) {
	e, err := c.entry(field)
	if err != nil {
		return c.State(), err
	}

	e.value = value
	switch {
	case c.opts.revalidate == RevalidateOnChange && e.machine.canFire(EventChange):
		c.validate(ctx, e, EventChange)
	case e.machine.current.Touched():
		e.stale = true
	}

	return c.commit(), nil
}

// Blur marks a field touched and validates it unconditionally.
func (c *Controller) Blur(ctx context.Context, field string) (FormState, error) {
	e, err := c.entry(field)
	if err != nil {
		return c.State(), err
	}

	c.validate(ctx, e, EventBlur)
	return c.commit(), nil
}

// Submit touches and validates every field. It returns the values when the
// whole record is valid and validator.ValidationErrors otherwise.
func (c *Controller) Submit(ctx context.Context) (map[string]string, error) {
	var errs validator.ValidationErrors
	for _, name := range c.order {
		e := c.fields[name]
		if verr := c.validate(ctx, e, EventSubmit); verr != nil {
			errs.Add(*verr)
		}
	}
	c.submitCount++
	state := c.commit()

	if !errs.IsEmpty() {
		c.opts.logger.DebugContext(ctx, "form submit rejected",
			logger.Form(c.schema.Name()),
			slog.Any("fields", errs.Fields()),
		)
		return nil, errs
	}

	c.opts.logger.DebugContext(ctx, "form submitted", logger.Form(c.schema.Name()))
	return state.Values(), nil
}

// Reset restores initial values and returns every field to untouched.
func (c *Controller) Reset(ctx context.Context) FormState {
	for _, name := range c.order {
		e := c.fields[name]
		e.value = e.initial
		e.err = ""
		e.stale = false
		if err := e.machine.fire(EventReset, true); err != nil {
			c.opts.logger.WarnContext(ctx, "unexpected field transition",
				logger.Field(e.def.Name),
				logger.Event(string(EventReset)),
				logger.Error(err),
			)
		}
	}
	c.submitCount = 0

	c.opts.logger.DebugContext(ctx, "form reset", logger.Form(c.schema.Name()))
	return c.commit()
}

// Restore replaces the live state with a snapshot previously taken from a
// controller of the same schema.
func (c *Controller) Restore(state FormState) error {
	if state.Form != c.schema.Name() || len(state.Fields) != len(c.order) {
		return ErrSchemaMismatch
	}
	for _, name := range c.order {
		fs, ok := state.Fields[name]
		if !ok || !fs.Status.valid() {
			return fmt.Errorf("%w: field %q", ErrSchemaMismatch, name)
		}
	}

	for _, name := range c.order {
		fs := state.Fields[name]
		e := c.fields[name]
		e.value = fs.Value
		e.err = fs.Error
		e.stale = fs.Stale && fs.Status.Touched()
		e.machine.current = fs.Status
	}
	c.submitCount = state.SubmitCount
	c.valid = c.computeValid()
	return nil
}

// State returns a snapshot of the current form state.
func (c *Controller) State() FormState {
	fields := make(map[string]FieldState, len(c.fields))
	for name, e := range c.fields {
		fields[name] = e.state()
	}
	return FormState{
		Form:        c.schema.Name(),
		Order:       append([]string(nil), c.order...),
		Fields:      fields,
		IsValid:     c.valid,
		SubmitCount: c.submitCount,
	}
}

// IsValid reports the derived validity flag.
func (c *Controller) IsValid() bool { return c.valid }

// Values returns the current value of every field.
func (c *Controller) Values() map[string]string {
	out := make(map[string]string, len(c.fields))
	for name, e := range c.fields {
		out[name] = e.value
	}
	return out
}

// Field returns the render view of a field.
func (c *Controller) Field(name string) (FieldView, bool) {
	e, ok := c.fields[name]
	if !ok {
		return FieldView{}, false
	}
	return FieldView{
		Name:        e.def.Name,
		Type:        e.def.Type,
		Label:       e.def.Label,
		Placeholder: e.def.Placeholder,
		Value:       e.value,
		Error:       e.err,
		Touched:     e.machine.current.Touched(),
	}, true
}

// Views returns render views for every field in declaration order.
func (c *Controller) Views() []FieldView {
	views := make([]FieldView, 0, len(c.order))
	for _, name := range c.order {
		v, _ := c.Field(name)
		views = append(views, v)
	}
	return views
}

// Subscribe registers fn to receive a snapshot after every event.
// The returned cancel func is idempotent.
func (c *Controller) Subscribe(fn Listener) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	return c.subs.add(fn)
}

func (c *Controller) entry(field string) (*fieldEntry, error) {
	e, ok := c.fields[field]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return e, nil
}

// validate runs the field's rules, moves its state machine and sets or clears
// its error. It returns the failure, if any.
func (c *Controller) validate(ctx context.Context, e *fieldEntry, evt FieldEvent) *validator.ValidationError {
	verr := schema.ValidateField(e.def, e.value)
	from := e.machine.current

	if err := e.machine.fire(evt, verr == nil); err != nil {
		// Every status accepts blur and submit; change is gated by canFire.
		c.opts.logger.WarnContext(ctx, "unexpected field transition",
			logger.Field(e.def.Name),
			logger.Event(string(evt)),
			logger.Error(err),
		)
		return verr
	}

	e.err = ""
	e.stale = false
	if verr != nil {
		e.err = verr.Message
	}

	c.opts.logger.DebugContext(ctx, "field validated",
		logger.Form(c.schema.Name()),
		logger.Field(e.def.Name),
		logger.Event(string(evt)),
		slog.String("from", string(from)),
		slog.String("to", string(e.machine.current)),
	)
	return verr
}

// computeValid: no field shows an error and every field is settled.
func (c *Controller) computeValid() bool {
	for _, name := range c.order {
		e := c.fields[name]
		if e.err != "" || !c.settled(e) {
			return false
		}
	}
	return true
}

// settled reports whether the field's current value is known to be acceptable
// without the user having to do anything more.
func (c *Controller) settled(e *fieldEntry) bool {
	if e.machine.current.Touched() {
		return !e.stale
	}
	if !e.def.Required && e.value == "" {
		return true
	}
	return c.opts.validity == AcceptValidDefaults && e.defaultOK && e.value == e.initial
}

// commit recomputes validity and publishes a snapshot.
func (c *Controller) commit() FormState {
	c.valid = c.computeValid()
	state := c.State()
	c.subs.publish(state)
	return state
}
