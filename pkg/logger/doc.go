// Package logger builds *slog.Logger instances configured through
// functional options and decorated with context extractors, plus a few
// attribute helpers that keep key names consistent across packages.
//
//	log := logger.New(
//	    logger.WithFormat(logger.ParseFormat(cfg.LogFormat)),
//	    logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
//	    logger.WithService("schemad", cfg.Env),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "record rejected", logger.Schema("signup"), logger.Field("email"))
//
// Attribute helpers such as Error and Schema return an empty slog.Attr for
// zero input, which slog drops, so callers need no nil checks.
package logger
