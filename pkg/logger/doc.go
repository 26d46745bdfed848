// Package logger builds configured log/slog loggers with sensible defaults
// for development and production, plus attribute helpers used across the
// module for consistent log keys.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("authform-demo"),
//	)
//
//	log.Info("form submitted",
//	    logger.Form("login"),
//	    logger.Duration(elapsed),
//	)
//
// Production defaults are JSON at info level; development defaults are text
// at debug level. The returned logger injects request-scoped attributes from
// context when extractors are registered:
//
//	log := logger.New(
//	    logger.WithContextValue("request_id", requestIDKey),
//	)
//
// Attribute helpers (Error, Form, Field, Component, RequestID, Duration,
// Event) keep log keys uniform so records aggregate cleanly.
package logger
