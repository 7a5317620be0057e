package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Group creates a slog group attribute.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups the non-nil errors under "errors". All-nil input yields an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error records err under "error". A nil error yields an empty Attr, so
// callers can pass it without checking.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

func Component(name string) slog.Attr { return slog.String("component", name) }

// Form records the form (schema) name.
func Form(name string) slog.Attr { return slog.String("form", name) }

// Field records the field name.
func Field(name string) slog.Attr { return slog.String("field", name) }

// Event records a form or UI event name.
func Event(name string) slog.Attr { return slog.String("event", name) }

func Locale(tag string) slog.Attr { return slog.String("locale", tag) }

// DraftID records the identifier of a server-side form draft.
func DraftID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("draft_id", id)
}

// RequestID records the HTTP request identifier.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

func Duration(d time.Duration) slog.Attr { return slog.Duration("duration", d) }

// Handler records the HTTP handler name.
func Handler(name string) slog.Attr { return slog.String("handler", name) }
