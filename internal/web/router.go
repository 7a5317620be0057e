package web

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/loginform/internal/login"
	"github.com/dmitrymomot/loginform/pkg/httpserver"
	"github.com/dmitrymomot/loginform/pkg/i18n"
	"github.com/dmitrymomot/loginform/pkg/logger"
	"github.com/dmitrymomot/loginform/pkg/requestid"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	Handler *Handler
	Logger  *slog.Logger
	// Languages limits negotiation; the first entry is the fallback.
	Languages []string
	// Checks back /healthz. With none it reports liveness only.
	Checks []httpserver.HealthCheck
}

// NewRouter mounts the login page, its Datastar endpoints and /healthz.
func NewRouter(opts RouterOptions) chi.Router {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}
	langs := opts.Languages
	if len(langs) == 0 {
		langs = login.Languages
	}
	h := opts.Handler

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)

	r.Get("/healthz", httpserver.HealthCheckHandler(log, opts.Checks...))

	r.Group(func(r chi.Router) {
		r.Use(i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(langs...)), langs[0]))

		r.Get("/", wrap(log, "page", h.Page))
		r.Route("/login", func(r chi.Router) {
			r.Post("/input", wrap(log, "input", h.Input))
			r.Post("/blur", wrap(log, "blur", h.Blur))
			r.Post("/submit", wrap(log, "submit", h.Submit))
		})
	})

	return r
}
