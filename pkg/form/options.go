package form

import (
	"log/slog"

	"github.com/dmitrymomot/loginform/pkg/logger"
)

// RevalidateMode decides when a field that has already been blurred is validated again.
type RevalidateMode string

const (
	// RevalidateOnChange validates touched fields on every value change.
	RevalidateOnChange RevalidateMode = "on_change"
	// RevalidateOnBlur validates only on blur and submit.
	RevalidateOnBlur RevalidateMode = "on_blur"
)

// ValidityPolicy decides which untouched fields may count towards IsValid.
type ValidityPolicy string

const (
	// RequireTouched counts a required field only after it has been blurred or submitted.
	RequireTouched ValidityPolicy = "require_touched"
	// AcceptValidDefaults also counts an untouched required field whose
	// non-empty default passed validation at initialization and is unchanged.
	AcceptValidDefaults ValidityPolicy = "accept_valid_defaults"
)

// Option configures a Controller.
type Option func(*options)

type options struct {
	revalidate RevalidateMode
	validity   ValidityPolicy
	logger     *slog.Logger
}

func defaultOptions() options {
	return options{
		revalidate: RevalidateOnChange,
		validity:   RequireTouched,
		logger:     logger.Discard(),
	}
}

// WithRevalidateMode sets the re-validation trigger. Unknown modes are ignored.
func WithRevalidateMode(m RevalidateMode) Option {
	return func(o *options) {
		switch m {
		case RevalidateOnChange, RevalidateOnBlur:
			o.revalidate = m
		}
	}
}

// WithValidityPolicy sets how untouched fields affect IsValid. Unknown policies are ignored.
func WithValidityPolicy(p ValidityPolicy) Option {
	return func(o *options) {
		switch p {
		case RequireTouched, AcceptValidDefaults:
			o.validity = p
		}
	}
}

// WithLogger provides a logger for event tracing. Nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
