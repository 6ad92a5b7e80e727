// Package logger builds slog loggers and defines the attribute helpers used
// across the module.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "optguard"),
//	    logger.WithContextExtractors(rbac.LoggerExtractor()),
//	)
//	log.WarnContext(ctx, "unknown sanitization rule", logger.OptionName("theme_opts"), logger.Rule("colour"))
//
// Context extractors run on every record, so request-scoped values such as
// the acting principal are read at log time.
package logger
