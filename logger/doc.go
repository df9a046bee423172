// Package logger builds the slog.Logger used for configuration diagnostics.
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithLevel(slog.LevelDebug),
//	)
//
// Defaults: text format, INFO level, stderr.
package logger
