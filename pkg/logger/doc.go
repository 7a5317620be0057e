// Package logger builds *slog.Logger values with functional options and
// provides attribute constructors so that keys stay consistent across the
// form engine, the HTTP server and the CLI.
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "loginform"),
//		logger.WithContextExtractors(logger.ContextAttrs),
//	)
//	ctx = logger.WithAttrs(ctx, logger.DraftID(id))
//	log.InfoContext(ctx, "field validated", logger.Field("email"))
//
// Error and Errors return an empty attribute for nil input, so they can be
// passed unconditionally.
package logger
