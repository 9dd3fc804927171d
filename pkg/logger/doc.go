// Package logger builds log/slog loggers from functional options and adds
// attributes pulled from context.Context on every call.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithService("formrules"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "served patterns", logger.Duration(time.Since(start)))
//
// The helpers in attr.go keep attribute keys consistent. Error and RequestID
// return an empty Attr for zero values, so they can be passed unconditionally.
package logger
