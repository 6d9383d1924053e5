// Package logger builds *slog.Logger instances for formcheck binaries.
//
// New applies functional options (format, level, output, static attributes)
// and wraps the chosen slog.Handler with a decorator that injects attributes
// pulled from context.Context on every record, such as the request id.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "formcheck"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "form checked", logger.Rule("email"), logger.Valid(false))
//
// Attribute helpers in attr.go keep key names consistent. Error returns an
// empty attribute for a nil error, so it can be passed unconditionally.
package logger
