package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/loginform/internal/web"
	"github.com/dmitrymomot/loginform/pkg/httpserver"
	"github.com/dmitrymomot/loginform/pkg/logger"
	"github.com/dmitrymomot/loginform/pkg/redis"
	"github.com/dmitrymomot/loginform/pkg/schema"
)

const memoryCleanupInterval = time.Minute

func newServeCmd(current appFunc, preRun preRunFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "serve",
		Short:   "Serve the login form over HTTP",
		Args:    cobra.NoArgs,
		PreRunE: preRun,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, current())
		},
	}
}

func serve(ctx context.Context, a *app) error {
	langs := languagesFor(a.locale)

	// Every language's schema is built up front so a bad declaration file
	// fails at startup.
	schemas := make(map[string]*schema.FormSchema, len(langs))
	for _, lang := range langs {
		s, err := a.schema(lang)
		if err != nil {
			return err
		}
		schemas[lang] = s
	}

	store, checks, cleanup, err := newDraftStore(ctx, a)
	if err != nil {
		return err
	}
	defer cleanup()

	h := web.NewHandler(
		func(lang string) *schema.FormSchema {
			if s, ok := schemas[lang]; ok {
				return s
			}
			return schemas[a.locale]
		},
		a.texts,
		store,
		web.WithLogger(a.log),
		web.WithCookieTTL(a.cfg.DraftTTL),
	)
	router := web.NewRouter(web.RouterOptions{
		Handler:   h,
		Logger:    a.log,
		Languages: langs,
		Checks:    checks,
	})

	srv := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(a.log))
	return srv.Run(ctx, router)
}

// newDraftStore uses Redis when REDIS_URL is set and process memory otherwise.
func newDraftStore(ctx context.Context, a *app) (web.Store, []httpserver.HealthCheck, func(), error) {
	if !a.cfg.Redis.Enabled() {
		s := web.NewMemoryStore(a.cfg.DraftTTL, memoryCleanupInterval)
		a.log.InfoContext(ctx, "using in-memory draft store", logger.Component("drafts"))
		return s, nil, func() { _ = s.Close() }, nil
	}

	client, err := redis.Connect(ctx, a.cfg.Redis)
	if err != nil {
		return nil, nil, nil, err
	}
	a.log.InfoContext(ctx, "using redis draft store", logger.Component("drafts"))
	return web.NewRedisStore(client, a.cfg.Redis.KeyPrefix, a.cfg.DraftTTL),
		[]httpserver.HealthCheck{redis.Healthcheck(client)},
		func() { _ = client.Close() },
		nil
}
