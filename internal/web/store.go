package web

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrymomot/loginform/pkg/form"
)

var (
	ErrDraftNotFound = errors.New("web: draft not found")
	ErrInvalidDraft  = errors.New("web: invalid draft")
)

// Draft is the server-side copy of one browser's form state.
type Draft struct {
	ID        string         `json:"id"`
	Locale    string         `json:"locale"`
	State     form.FormState `json:"state"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Store persists drafts between SSE requests. Implementations are safe for
// concurrent use and expire drafts after their TTL.
type Store interface {
	Load(ctx context.Context, id string) (Draft, error)
	Save(ctx context.Context, d Draft) error
	Delete(ctx context.Context, id string) error
}
