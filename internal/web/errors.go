package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/loginform/pkg/form"
	"github.com/dmitrymomot/loginform/pkg/logger"
	"github.com/dmitrymomot/loginform/pkg/validator"
)

// HandlerFunc is an http handler that reports failures instead of writing them.
type HandlerFunc func(w http.ResponseWriter, r *http.Request) error

func isValidationFailure(err error) bool {
	return validator.IsValidationError(err)
}

// statusFor maps handler errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrBadSignals), errors.Is(err, form.ErrUnknownField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// wrap adapts fn to http.HandlerFunc. Errors are logged and answered with a
// plain status; once an SSE stream has started the status can no longer
// change, so only the log entry remains.
func wrap(log *slog.Logger, name string, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		status := statusFor(err)
		level := slog.LevelError
		if status < http.StatusInternalServerError {
			level = slog.LevelWarn
		}
		log.Log(r.Context(), level, "request failed",
			logger.Handler(name),
			slog.Int("status", status),
			logger.Error(err),
		)
		http.Error(w, http.StatusText(status), status)
	}
}
